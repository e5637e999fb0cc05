package authz

import (
	"fmt"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

// Principal holds the identity and authorization facts resolved from a single
// presented credential. It is request-scoped and never persisted.
type Principal struct {
	OrgId        string
	UserId       string
	MembershipId string
	Role         string
	Scopes       CapabilitySet
	IsAPIKey     bool
}

// CanRead: API-key principals need any of read/write/admin in scope (broader
// scope subsumes narrower); session members read unconditionally.
func (p *Principal) CanRead() bool {
	if p.IsAPIKey {
		return p.Scopes.Has(CapabilityRead) || p.Scopes.Has(CapabilityWrite) || p.Scopes.Has(CapabilityAdmin)
	}
	return true
}

// CanWrite: API-key principals need write or admin in scope; session members
// write unconditionally.
func (p *Principal) CanWrite() bool {
	if p.IsAPIKey {
		return p.Scopes.Has(CapabilityWrite) || p.Scopes.Has(CapabilityAdmin)
	}
	return true
}

// CanAdmin: API-key principals need admin in scope; session principals need
// an owner or admin role. An API key's scope set never expands the role, it
// only bounds what the credential may do in its fixed organization.
func (p *Principal) CanAdmin() bool {
	if p.IsAPIKey {
		return p.Scopes.Has(CapabilityAdmin)
	}
	return model.IsAdminRole(p.Role)
}

// RequestContext is the sole authorization input consumed by resource
// operations. All persistence lookups filter by (resource id, OrgId) and
// mutations call the Require* guards first.
type RequestContext struct {
	Principal
}

func NewRequestContext(p *Principal) *RequestContext {
	return &RequestContext{Principal: *p}
}

func (rc *RequestContext) RequireRead() error {
	if !rc.CanRead() {
		return fmt.Errorf("%w: read capability required", ErrPermissionDenied)
	}
	return nil
}

func (rc *RequestContext) RequireWrite() error {
	if !rc.CanWrite() {
		return fmt.Errorf("%w: write capability required", ErrPermissionDenied)
	}
	return nil
}

func (rc *RequestContext) RequireAdmin() error {
	if !rc.CanAdmin() {
		return fmt.Errorf("%w: admin capability required", ErrPermissionDenied)
	}
	return nil
}
