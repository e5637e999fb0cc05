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

package repo

import (
	"context"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/pkg/database"
)

type IMembershipRepository interface {
	CreateMembership(ctx context.Context, m *model.Membership) error
	GetMembership(ctx context.Context, userId, orgId string) (*model.Membership, error)
	GetMembershipById(ctx context.Context, membershipId, orgId string) (*model.Membership, error)
	ListMembershipsByUser(ctx context.Context, userId string) ([]*model.Membership, error)
	ListMembershipsByOrg(ctx context.Context, orgId string) ([]*model.Membership, error)
	CountAdmins(ctx context.Context, orgId string) (int64, error)
	UpdateRole(ctx context.Context, membershipId, orgId, role string) error
	DeleteMembership(ctx context.Context, membershipId, orgId string) error
}

type MembershipRepo struct {
	database.IDatabase
	membershipModel *model.Membership
}

func NewMembershipRepo(db database.IDatabase) IMembershipRepository {
	return &MembershipRepo{IDatabase: db, membershipModel: &model.Membership{}}
}

func (mr *MembershipRepo) CreateMembership(ctx context.Context, m *model.Membership) error {
	return mr.Database().WithContext(ctx).Create(m).Error
}

func (mr *MembershipRepo) GetMembership(ctx context.Context, userId, orgId string) (*model.Membership, error) {
	var m model.Membership
	err := mr.Database().WithContext(ctx).
		Where("user_id = ? AND org_id = ?", userId, orgId).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (mr *MembershipRepo) GetMembershipById(ctx context.Context, membershipId, orgId string) (*model.Membership, error) {
	var m model.Membership
	err := mr.Database().WithContext(ctx).
		Where("membership_id = ? AND org_id = ?", membershipId, orgId).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (mr *MembershipRepo) ListMembershipsByUser(ctx context.Context, userId string) ([]*model.Membership, error) {
	var memberships []*model.Membership
	err := mr.Database().WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at ASC").
		Find(&memberships).Error
	return memberships, err
}

func (mr *MembershipRepo) ListMembershipsByOrg(ctx context.Context, orgId string) ([]*model.Membership, error) {
	var memberships []*model.Membership
	err := mr.Database().WithContext(ctx).
		Where("org_id = ?", orgId).
		Order("created_at ASC").
		Find(&memberships).Error
	return memberships, err
}

// CountAdmins counts memberships that satisfy the admin floor, i.e. owners
// and admins.
func (mr *MembershipRepo) CountAdmins(ctx context.Context, orgId string) (int64, error) {
	var count int64
	err := mr.Database().WithContext(ctx).
		Model(mr.membershipModel).
		Where("org_id = ? AND role IN ?", orgId, []string{model.OrgRoleOwner, model.OrgRoleAdmin}).
		Count(&count).Error
	return count, err
}

func (mr *MembershipRepo) UpdateRole(ctx context.Context, membershipId, orgId, role string) error {
	return mr.Database().WithContext(ctx).
		Model(mr.membershipModel).
		Where("membership_id = ? AND org_id = ?", membershipId, orgId).
		Update("role", role).Error
}

func (mr *MembershipRepo) DeleteMembership(ctx context.Context, membershipId, orgId string) error {
	return mr.Database().WithContext(ctx).
		Where("membership_id = ? AND org_id = ?", membershipId, orgId).
		Delete(mr.membershipModel).Error
}
