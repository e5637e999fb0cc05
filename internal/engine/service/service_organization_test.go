package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

func newOrgServiceFixture() (*OrganizationService, *fakeOrgRepo, *fakeMembershipRepo, *fakeUserRepo) {
	memberships := newFakeMembershipRepo()
	orgs := newFakeOrgRepo(memberships)
	users := newFakeUserRepo()
	return NewOrganizationService(orgs, memberships, users), orgs, memberships, users
}

func TestCreateOrganization(t *testing.T) {
	svc, _, memberships, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-1", &model.CreateOrgReq{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "acme-corp", org.Slug)
	assert.Equal(t, model.OrgRoleMember, org.DefaultRole)

	m, err := memberships.GetMembership(context.Background(), "u-1", org.OrgId)
	require.NoError(t, err)
	assert.Equal(t, model.OrgRoleOwner, m.Role)
}

func TestCreateOrganizationSlugCollision(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	first, err := svc.CreateOrganization(context.Background(), "u-1", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	second, err := svc.CreateOrganization(context.Background(), "u-2", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "acme", first.Slug)
	assert.Equal(t, "acme-2", second.Slug)
}

func TestGenerateInviteTokenIdempotent(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-1", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)

	first, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestJoinViaToken(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-owner", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	token, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)

	m, err := svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)
	assert.Equal(t, model.OrgRoleMember, m.Role)

	// redeeming again returns the same membership unchanged
	again, err := svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)
	assert.Equal(t, m.MembershipId, again.MembershipId)

	_, err = svc.JoinViaToken(context.Background(), "u-3", "no-such-token")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestJoinViaTokenBootstrapsAdmin(t *testing.T) {
	svc, _, memberships, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-owner", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	token, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)

	// the owner leaves; the org is adminless
	require.NoError(t, svc.LeaveOrganization(context.Background(), org.OrgId, "u-owner"))
	admins, err := memberships.CountAdmins(context.Background(), org.OrgId)
	require.NoError(t, err)
	require.Zero(t, admins)

	m, err := svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)
	assert.Equal(t, model.OrgRoleAdmin, m.Role)
}

func TestRemoveMember(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-owner", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	token, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)
	_, err = svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)

	// a plain member cannot remove anyone
	err = svc.RemoveMember(context.Background(), org.OrgId, "u-owner", "u-2")
	require.ErrorIs(t, err, authz.ErrPermissionDenied)

	// a non-member requestor is rejected before anything else
	err = svc.RemoveMember(context.Background(), org.OrgId, "u-2", "u-stranger")
	require.ErrorIs(t, err, ErrNotAMember)

	require.NoError(t, svc.RemoveMember(context.Background(), org.OrgId, "u-2", "u-owner"))

	ok, err := svc.IsMember(context.Background(), "u-2", org.OrgId)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveMemberAdminFloor(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-owner", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	token, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)
	_, err = svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)

	// the owner is the last admin and another member remains
	err = svc.RemoveMember(context.Background(), org.OrgId, "u-owner", "u-owner")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestChangeRole(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-owner", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	token, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)
	_, err = svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)

	_, err = svc.ChangeRole(context.Background(), org.OrgId, "u-2", "superuser", "u-owner")
	require.ErrorIs(t, err, ErrInvalidState)

	m, err := svc.ChangeRole(context.Background(), org.OrgId, "u-2", model.OrgRoleAdmin, "u-owner")
	require.NoError(t, err)
	assert.Equal(t, model.OrgRoleAdmin, m.Role)

	// two admins now; demoting the owner is allowed
	m, err = svc.ChangeRole(context.Background(), org.OrgId, "u-owner", model.OrgRoleMember, "u-2")
	require.NoError(t, err)
	assert.Equal(t, model.OrgRoleMember, m.Role)

	// u-2 is the last admin with another member present
	_, err = svc.ChangeRole(context.Background(), org.OrgId, "u-2", model.OrgRoleMember, "u-2")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestLeaveOrganization(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org, err := svc.CreateOrganization(context.Background(), "u-owner", &model.CreateOrgReq{Name: "Acme"})
	require.NoError(t, err)
	token, err := svc.GenerateInviteToken(context.Background(), org.OrgId)
	require.NoError(t, err)
	_, err = svc.JoinViaToken(context.Background(), "u-2", token)
	require.NoError(t, err)

	// last admin cannot leave while others remain
	err = svc.LeaveOrganization(context.Background(), org.OrgId, "u-owner")
	require.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, svc.LeaveOrganization(context.Background(), org.OrgId, "u-2"))

	// sole remaining member may always leave; the org ends memberless
	require.NoError(t, svc.LeaveOrganization(context.Background(), org.OrgId, "u-owner"))

	err = svc.LeaveOrganization(context.Background(), org.OrgId, "u-owner")
	require.ErrorIs(t, err, ErrNotAMember)
}

func TestListUserOrganizations(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	org1, err := svc.CreateOrganization(context.Background(), "u-1", &model.CreateOrgReq{Name: "One"})
	require.NoError(t, err)
	_, err = svc.CreateOrganization(context.Background(), "u-2", &model.CreateOrgReq{Name: "Two"})
	require.NoError(t, err)

	orgs, err := svc.ListUserOrganizations(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, org1.OrgId, orgs[0].OrgId)
	assert.Equal(t, model.OrgRoleOwner, orgs[0].Role)
}
