package authz

import "errors"

var (
	// ErrNotAuthenticated is returned when no credential was presented.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredential covers bad signatures and unknown, inactive or
	// expired API keys.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrNoActiveOrg is returned for a valid session token that carries no
	// organization-context claim. Distinct from ErrInvalidCredential so the
	// client knows to select an organization rather than re-authenticate.
	ErrNoActiveOrg = errors.New("no active organization context")

	// ErrPermissionDenied is returned when a required capability is absent.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidScope is returned for a scope token outside {read, write, admin}.
	ErrInvalidScope = errors.New("invalid scope")
)
