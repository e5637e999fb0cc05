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

	"gorm.io/gorm"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/pkg/database"
)

type IOrganizationRepository interface {
	CreateOrganization(ctx context.Context, org *model.Organization) error
	CreateOrganizationWithOwner(ctx context.Context, org *model.Organization, owner *model.Membership) error
	GetOrganizationById(ctx context.Context, orgId string) (*model.Organization, error)
	GetOrganizationByInviteToken(ctx context.Context, token string) (*model.Organization, error)
	CountOrganizationsBySlug(ctx context.Context, slug string) (int64, error)
	SetInviteToken(ctx context.Context, orgId, token string) error
}

type OrganizationRepo struct {
	database.IDatabase
	orgModel *model.Organization
}

func NewOrganizationRepo(db database.IDatabase) IOrganizationRepository {
	return &OrganizationRepo{IDatabase: db, orgModel: &model.Organization{}}
}

func (or *OrganizationRepo) CreateOrganization(ctx context.Context, org *model.Organization) error {
	return or.Database().WithContext(ctx).Create(org).Error
}

// CreateOrganizationWithOwner writes the organization and its owner
// membership in one transaction so a failed membership insert never leaves
// an orphan org behind.
func (or *OrganizationRepo) CreateOrganizationWithOwner(ctx context.Context, org *model.Organization, owner *model.Membership) error {
	return or.Database().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		return tx.Create(owner).Error
	})
}

func (or *OrganizationRepo) GetOrganizationById(ctx context.Context, orgId string) (*model.Organization, error) {
	var org model.Organization
	err := or.Database().WithContext(ctx).
		Where("org_id = ?", orgId).
		First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (or *OrganizationRepo) GetOrganizationByInviteToken(ctx context.Context, token string) (*model.Organization, error) {
	var org model.Organization
	err := or.Database().WithContext(ctx).
		Where("invite_token = ?", token).
		First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (or *OrganizationRepo) CountOrganizationsBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := or.Database().WithContext(ctx).
		Model(or.orgModel).
		Where("slug = ?", slug).
		Count(&count).Error
	return count, err
}

func (or *OrganizationRepo) SetInviteToken(ctx context.Context, orgId, token string) error {
	return or.Database().WithContext(ctx).
		Model(or.orgModel).
		Where("org_id = ?", orgId).
		Update("invite_token", token).Error
}
