// Copyright 2025 TeamLedger Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/id"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

const maxSlugAttempts = 50

type OrganizationService struct {
	orgRepo        repo.IOrganizationRepository
	membershipRepo repo.IMembershipRepository
	userRepo       repo.IUserRepository
}

func NewOrganizationService(orgRepo repo.IOrganizationRepository, membershipRepo repo.IMembershipRepository, userRepo repo.IUserRepository) *OrganizationService {
	return &OrganizationService{
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
	}
}

// CreateOrganization writes the organization together with an owner
// membership for the creating user.
func (os *OrganizationService) CreateOrganization(ctx context.Context, userId string, req *model.CreateOrgReq) (*model.Organization, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: organization name is required", ErrInvalidState)
	}

	slug, err := os.uniqueSlug(ctx, req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		OrgId:       id.GetUUID(),
		Name:        req.Name,
		Slug:        slug,
		DefaultRole: model.OrgRoleMember,
	}
	owner := &model.Membership{
		MembershipId: id.GetUUID(),
		UserId:       userId,
		OrgId:        org.OrgId,
		Role:         model.OrgRoleOwner,
	}
	if err := os.orgRepo.CreateOrganizationWithOwner(ctx, org, owner); err != nil {
		log.Errorw("failed to create organization", "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, nil
}

// GenerateInviteToken returns the organization's invite token, minting one
// on first use. The token is persistent and reusable; re-minting returns the
// same value.
func (os *OrganizationService) GenerateInviteToken(ctx context.Context, orgId string) (string, error) {
	org, err := os.orgRepo.GetOrganizationById(ctx, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: organization", ErrNotFound)
		}
		return "", fmt.Errorf("failed to fetch organization: %w", err)
	}
	if org.InviteToken != nil && *org.InviteToken != "" {
		return *org.InviteToken, nil
	}

	token := id.GetSecureToken(32)
	if err := os.orgRepo.SetInviteToken(ctx, orgId, token); err != nil {
		return "", fmt.Errorf("failed to store invite token: %w", err)
	}
	return token, nil
}

// JoinViaToken redeems an invite token. Re-joining is idempotent: an
// existing membership is returned unchanged, whatever its role. A new member
// gets the org default role, bootstrapped to admin when the organization has
// no owner or admin left.
func (os *OrganizationService) JoinViaToken(ctx context.Context, userId, token string) (*model.Membership, error) {
	org, err := os.orgRepo.GetOrganizationByInviteToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown invite token", ErrInvalidState)
		}
		return nil, fmt.Errorf("failed to resolve invite token: %w", err)
	}

	existing, err := os.membershipRepo.GetMembership(ctx, userId, org.OrgId)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}

	role := org.DefaultRole
	if role == "" {
		role = model.OrgRoleMember
	}
	admins, err := os.membershipRepo.CountAdmins(ctx, org.OrgId)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}
	if admins == 0 {
		role = model.OrgRoleAdmin
	}

	m := &model.Membership{
		MembershipId: id.GetUUID(),
		UserId:       userId,
		OrgId:        org.OrgId,
		Role:         role,
	}
	if err := os.membershipRepo.CreateMembership(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return m, nil
}

// RemoveMember hard-deletes the target membership. The requestor's role is
// read live rather than trusted from the token.
func (os *OrganizationService) RemoveMember(ctx context.Context, orgId, targetUserId, requestorUserId string) error {
	if err := os.requireLiveAdmin(ctx, orgId, requestorUserId); err != nil {
		return err
	}

	target, err := os.membershipRepo.GetMembership(ctx, targetUserId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: membership", ErrNotFound)
		}
		return fmt.Errorf("failed to fetch membership: %w", err)
	}

	if err := os.checkAdminFloor(ctx, orgId, target); err != nil {
		return err
	}
	return os.membershipRepo.DeleteMembership(ctx, target.MembershipId, orgId)
}

// ChangeRole sets the target membership's role within the closed role set.
func (os *OrganizationService) ChangeRole(ctx context.Context, orgId, targetUserId, newRole, requestorUserId string) (*model.Membership, error) {
	if !model.IsValidRole(newRole) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidState, newRole)
	}
	if err := os.requireLiveAdmin(ctx, orgId, requestorUserId); err != nil {
		return nil, err
	}

	target, err := os.membershipRepo.GetMembership(ctx, targetUserId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: membership", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}

	if model.IsAdminRole(target.Role) && !model.IsAdminRole(newRole) {
		if err := os.checkAdminFloor(ctx, orgId, target); err != nil {
			return nil, err
		}
	}

	if err := os.membershipRepo.UpdateRole(ctx, target.MembershipId, orgId, newRole); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	target.Role = newRole
	return target, nil
}

// LeaveOrganization removes the caller's own membership. The sole remaining
// member may always leave, even as the last admin; the organization then
// stays memberless.
func (os *OrganizationService) LeaveOrganization(ctx context.Context, orgId, userId string) error {
	m, err := os.membershipRepo.GetMembership(ctx, userId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAMember
		}
		return fmt.Errorf("failed to fetch membership: %w", err)
	}

	members, err := os.membershipRepo.ListMembershipsByOrg(ctx, orgId)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}
	if len(members) > 1 {
		if err := os.checkAdminFloor(ctx, orgId, m); err != nil {
			return err
		}
	}
	return os.membershipRepo.DeleteMembership(ctx, m.MembershipId, orgId)
}

// IsMember is the live membership existence check used per request for
// session principals with an org-bound token.
func (os *OrganizationService) IsMember(ctx context.Context, userId, orgId string) (bool, error) {
	_, err := os.membershipRepo.GetMembership(ctx, userId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (os *OrganizationService) GetOrganization(ctx context.Context, orgId string) (*model.Organization, error) {
	org, err := os.orgRepo.GetOrganizationById(ctx, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: organization", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}
	return org, nil
}

func (os *OrganizationService) ListUserOrganizations(ctx context.Context, userId string) ([]*model.UserOrgResp, error) {
	memberships, err := os.membershipRepo.ListMembershipsByUser(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	resp := make([]*model.UserOrgResp, 0, len(memberships))
	for _, m := range memberships {
		org, err := os.orgRepo.GetOrganizationById(ctx, m.OrgId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to fetch organization: %w", err)
		}
		resp = append(resp, &model.UserOrgResp{
			OrgResp:      *model.ToOrgResp(org),
			Role:         m.Role,
			MembershipId: m.MembershipId,
		})
	}
	return resp, nil
}

func (os *OrganizationService) ListMembers(ctx context.Context, orgId string) ([]*model.MemberResp, error) {
	memberships, err := os.membershipRepo.ListMembershipsByOrg(ctx, orgId)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	resp := make([]*model.MemberResp, 0, len(memberships))
	for _, m := range memberships {
		member := &model.MemberResp{
			MembershipId: m.MembershipId,
			UserId:       m.UserId,
			Role:         m.Role,
		}
		if u, err := os.userRepo.GetUserById(ctx, m.UserId); err == nil {
			member.Email = u.Email
			member.Name = u.Name
		}
		resp = append(resp, member)
	}
	return resp, nil
}

// RequireAdmin verifies against live state that the user is an owner or
// admin of the organization.
func (os *OrganizationService) RequireAdmin(ctx context.Context, orgId, userId string) error {
	return os.requireLiveAdmin(ctx, orgId, userId)
}

// requireLiveAdmin re-reads the requestor's membership so a demoted admin
// cannot keep acting on a stale token role.
func (os *OrganizationService) requireLiveAdmin(ctx context.Context, orgId, userId string) error {
	m, err := os.membershipRepo.GetMembership(ctx, userId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotAMember
		}
		return fmt.Errorf("failed to fetch membership: %w", err)
	}
	if !model.IsAdminRole(m.Role) {
		return fmt.Errorf("%w: requires owner or admin role", authz.ErrPermissionDenied)
	}
	return nil
}

// checkAdminFloor rejects removing or demoting the last owner/admin while
// other members remain; they would be left with nobody able to administer
// the organization.
func (os *OrganizationService) checkAdminFloor(ctx context.Context, orgId string, target *model.Membership) error {
	if !model.IsAdminRole(target.Role) {
		return nil
	}
	admins, err := os.membershipRepo.CountAdmins(ctx, orgId)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins > 1 {
		return nil
	}
	members, err := os.membershipRepo.ListMembershipsByOrg(ctx, orgId)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}
	if len(members) > 1 {
		return fmt.Errorf("%w: cannot remove the last admin while other members remain", ErrInvalidState)
	}
	return nil
}

// uniqueSlug derives a URL-safe slug and retries with a numeric suffix
// until it does not collide.
func (os *OrganizationService) uniqueSlug(ctx context.Context, requested, name string) (string, error) {
	base := slugify(requested)
	if base == "" {
		base = slugify(name)
	}
	if base == "" {
		base = "org"
	}

	candidate := base
	for i := 2; i <= maxSlugAttempts; i++ {
		count, err := os.orgRepo.CountOrganizationsBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	// pathological collision run; fall back to a random suffix
	return fmt.Sprintf("%s-%s", base, id.GetUUIDWithoutDashes()[:8]), nil
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
