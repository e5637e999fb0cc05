package model

import "time"

// APIKey credential. Only the one-way hash of the secret is persisted;
// KeyPrefix is the non-secret first characters kept for display. OrgId is
// authoritative and never influenced by the caller.
type APIKey struct {
	BaseModel
	KeyId     string     `gorm:"column:key_id;uniqueIndex" json:"keyId"`
	OrgId     string     `gorm:"column:org_id;index" json:"orgId"`
	Name      string     `gorm:"column:name" json:"name"`
	KeyHash   string     `gorm:"column:key_hash;index" json:"-"`
	KeyPrefix string     `gorm:"column:key_prefix" json:"keyPrefix"`
	Scopes    string     `gorm:"column:scopes" json:"scopes"` // comma-joined, parsed at the credential boundary
	IsActive  bool       `gorm:"column:is_active;default:true" json:"isActive"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expiresAt"`
}

func (APIKey) TableName() string {
	return "t_api_key"
}

type CreateAPIKeyReq struct {
	Name      string     `json:"name"`
	Scopes    string     `json:"scopes"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type APIKeyResp struct {
	KeyId     string     `json:"keyId"`
	OrgId     string     `json:"orgId"`
	Name      string     `json:"name"`
	KeyPrefix string     `json:"keyPrefix"`
	Scopes    string     `json:"scopes"`
	IsActive  bool       `json:"isActive"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt string     `json:"createdAt"`
}

// APIKeyCreatedResp additionally carries the raw secret, returned exactly
// once at creation time.
type APIKeyCreatedResp struct {
	APIKeyResp
	Key string `json:"key"`
}

func ToAPIKeyResp(k *APIKey) *APIKeyResp {
	return &APIKeyResp{
		KeyId:     k.KeyId,
		OrgId:     k.OrgId,
		Name:      k.Name,
		KeyPrefix: k.KeyPrefix,
		Scopes:    k.Scopes,
		IsActive:  k.IsActive,
		ExpiresAt: k.ExpiresAt,
		CreatedAt: k.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
