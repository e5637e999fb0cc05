package model

// Organization is the tenancy root. InviteToken is persistent and reusable
// per organization; nil means no invite link has been minted yet.
type Organization struct {
	BaseModel
	OrgId       string  `gorm:"column:org_id;uniqueIndex" json:"orgId"`
	Name        string  `gorm:"column:name;index" json:"name"`
	Slug        string  `gorm:"column:slug;uniqueIndex" json:"slug"`
	InviteToken *string `gorm:"column:invite_token;uniqueIndex" json:"-"`
	DefaultRole string  `gorm:"column:default_role;default:member" json:"defaultRole"` // role assigned to new joiners
}

func (Organization) TableName() string {
	return "t_organization"
}

// Membership relates a user to an organization with a role. Unique on
// (user_id, org_id); hard-deleted on removal or leave.
type Membership struct {
	BaseModel
	MembershipId string `gorm:"column:membership_id;uniqueIndex" json:"membershipId"`
	UserId       string `gorm:"column:user_id;uniqueIndex:idx_member_user_org" json:"userId"`
	OrgId        string `gorm:"column:org_id;uniqueIndex:idx_member_user_org" json:"orgId"`
	Role         string `gorm:"column:role;default:member" json:"role"`
}

func (Membership) TableName() string {
	return "t_membership"
}

// Organization roles.
const (
	OrgRoleOwner  = "owner"
	OrgRoleAdmin  = "admin"
	OrgRoleMember = "member"
)

// IsValidRole reports whether role is one of the closed set of roles.
func IsValidRole(role string) bool {
	switch role {
	case OrgRoleOwner, OrgRoleAdmin, OrgRoleMember:
		return true
	}
	return false
}

// IsAdminRole reports whether role carries organization-admin capability.
func IsAdminRole(role string) bool {
	return role == OrgRoleOwner || role == OrgRoleAdmin
}

type CreateOrgReq struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type JoinOrgReq struct {
	InviteToken string `json:"inviteToken"`
}

type ChangeRoleReq struct {
	Role string `json:"role"`
}

type OrgResp struct {
	OrgId       string `json:"orgId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	DefaultRole string `json:"defaultRole"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// UserOrgResp is an organization as seen from one user's membership.
type UserOrgResp struct {
	OrgResp
	Role         string `json:"role"`
	MembershipId string `json:"membershipId"`
}

// MemberResp is a membership joined with the member's user record.
type MemberResp struct {
	MembershipId string `json:"membershipId"`
	UserId       string `json:"userId"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

func ToOrgResp(o *Organization) *OrgResp {
	return &OrgResp{
		OrgId:       o.OrgId,
		Name:        o.Name,
		Slug:        o.Slug,
		DefaultRole: o.DefaultRole,
		CreatedAt:   o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   o.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
