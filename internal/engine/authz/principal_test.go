package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

func TestAPIKeyPrincipalCapabilities(t *testing.T) {
	tests := []struct {
		name                      string
		scopes                    []Capability
		canRead, canWrite, canAdmin bool
	}{
		{name: "read only", scopes: []Capability{CapabilityRead}, canRead: true},
		{name: "write subsumes read", scopes: []Capability{CapabilityWrite}, canRead: true, canWrite: true},
		{name: "admin subsumes all", scopes: []Capability{CapabilityAdmin}, canRead: true, canWrite: true, canAdmin: true},
		{name: "empty scopes", scopes: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Principal{
				OrgId:    "o-1",
				Scopes:   NewCapabilitySet(tt.scopes...),
				IsAPIKey: true,
			}
			assert.Equal(t, tt.canRead, p.CanRead())
			assert.Equal(t, tt.canWrite, p.CanWrite())
			assert.Equal(t, tt.canAdmin, p.CanAdmin())
		})
	}
}

func TestSessionPrincipalCapabilities(t *testing.T) {
	member := &Principal{OrgId: "o-1", UserId: "u-1", Role: model.OrgRoleMember}
	assert.True(t, member.CanRead())
	assert.True(t, member.CanWrite())
	assert.False(t, member.CanAdmin())

	admin := &Principal{OrgId: "o-1", UserId: "u-1", Role: model.OrgRoleAdmin}
	assert.True(t, admin.CanAdmin())

	owner := &Principal{OrgId: "o-1", UserId: "u-1", Role: model.OrgRoleOwner}
	assert.True(t, owner.CanAdmin())
}

func TestRequestContextGuards(t *testing.T) {
	rc := NewRequestContext(&Principal{
		OrgId:    "o-1",
		Scopes:   NewCapabilitySet(CapabilityRead),
		IsAPIKey: true,
	})

	require.NoError(t, rc.RequireRead())

	err := rc.RequireWrite()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrPermissionDenied)

	err = rc.RequireAdmin()
	require.ErrorIs(t, err, ErrPermissionDenied)
}
