package authz

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/pkg/http/jwt"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

// Config is the signing configuration handed to the resolver at construction
// time. It is loaded once at process start; the resolver never reads ambient
// global state.
type Config struct {
	SecretKey    string
	AccessExpire time.Duration
}

// KeyStore looks up API key credentials by the one-way hash of their secret.
type KeyStore interface {
	GetByHash(ctx context.Context, keyHash string) (*model.APIKey, error)
}

// HashAPIKey returns the hex SHA-256 of an API key secret. Only this hash is
// ever persisted or compared.
func HashAPIKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Resolver turns a presented credential into a Principal.
//
// Role and membership claims are baked into session tokens at mint time;
// revoking a membership or changing a role does not retroactively invalidate
// issued tokens. The staleness window is bounded by Config.AccessExpire, and
// admin-gated membership mutations re-read the live role in the service
// layer.
type Resolver struct {
	cfg  Config
	keys KeyStore
}

func NewResolver(cfg Config, keys KeyStore) *Resolver {
	return &Resolver{cfg: cfg, keys: keys}
}

// Resolve resolves exactly one of the presented credentials. An API key, when
// present, is authoritative: its stored organization binds the principal and
// any caller-supplied organization hint is ignored.
func (r *Resolver) Resolve(ctx context.Context, bearerToken, apiKey string) (*Principal, error) {
	if apiKey != "" {
		return r.resolveAPIKey(ctx, apiKey)
	}
	if bearerToken != "" {
		return r.resolveSessionToken(bearerToken)
	}
	return nil, ErrNotAuthenticated
}

func (r *Resolver) resolveAPIKey(ctx context.Context, secret string) (*Principal, error) {
	key, err := r.keys.GetByHash(ctx, HashAPIKey(secret))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown api key", ErrInvalidCredential)
		}
		log.Errorw("api key lookup failed", "error", err)
		return nil, err
	}
	if !key.IsActive {
		return nil, fmt.Errorf("%w: api key revoked", ErrInvalidCredential)
	}
	if key.ExpiresAt != nil && key.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: api key expired", ErrInvalidCredential)
	}

	scopes, err := ParseScopes(key.Scopes)
	if err != nil {
		// a bad scope string at rest means the key row is corrupt
		log.Errorw("api key carries invalid scopes", "keyId", key.KeyId, "scopes", key.Scopes)
		return nil, fmt.Errorf("%w: malformed scopes", ErrInvalidCredential)
	}

	return &Principal{
		OrgId:    key.OrgId,
		Scopes:   scopes,
		IsAPIKey: true,
	}, nil
}

func (r *Resolver) resolveSessionToken(token string) (*Principal, error) {
	claims, err := jwt.ParseToken(token, r.cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if claims.UserId == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidCredential)
	}
	if claims.OrgId == "" {
		return nil, ErrNoActiveOrg
	}

	return &Principal{
		OrgId:        claims.OrgId,
		UserId:       claims.UserId,
		MembershipId: claims.MembershipId,
		Role:         claims.Role,
		IsAPIKey:     false,
	}, nil
}

// ResolveUser verifies a session token without requiring an organization
// context. Used by pre-org-selection endpoints (list organizations, switch,
// join).
func (r *Resolver) ResolveUser(token string) (*Principal, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	claims, err := jwt.ParseToken(token, r.cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if claims.UserId == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidCredential)
	}
	return &Principal{
		OrgId:        claims.OrgId,
		UserId:       claims.UserId,
		MembershipId: claims.MembershipId,
		Role:         claims.Role,
		IsAPIKey:     false,
	}, nil
}
