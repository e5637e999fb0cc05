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

// IAPIKeyRepository also satisfies authz.KeyStore through GetByHash.
type IAPIKeyRepository interface {
	CreateAPIKey(ctx context.Context, k *model.APIKey) error
	GetByHash(ctx context.Context, keyHash string) (*model.APIKey, error)
	GetAPIKeyById(ctx context.Context, keyId, orgId string) (*model.APIKey, error)
	ListAPIKeysByOrg(ctx context.Context, orgId string) ([]*model.APIKey, error)
	DeactivateAPIKey(ctx context.Context, keyId, orgId string) error
}

type APIKeyRepo struct {
	database.IDatabase
	keyModel *model.APIKey
}

func NewAPIKeyRepo(db database.IDatabase) IAPIKeyRepository {
	return &APIKeyRepo{IDatabase: db, keyModel: &model.APIKey{}}
}

func (kr *APIKeyRepo) CreateAPIKey(ctx context.Context, k *model.APIKey) error {
	return kr.Database().WithContext(ctx).Create(k).Error
}

func (kr *APIKeyRepo) GetByHash(ctx context.Context, keyHash string) (*model.APIKey, error) {
	var k model.APIKey
	err := kr.Database().WithContext(ctx).
		Where("key_hash = ?", keyHash).
		First(&k).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (kr *APIKeyRepo) GetAPIKeyById(ctx context.Context, keyId, orgId string) (*model.APIKey, error) {
	var k model.APIKey
	err := kr.Database().WithContext(ctx).
		Where("key_id = ? AND org_id = ?", keyId, orgId).
		First(&k).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (kr *APIKeyRepo) ListAPIKeysByOrg(ctx context.Context, orgId string) ([]*model.APIKey, error) {
	var keys []*model.APIKey
	err := kr.Database().WithContext(ctx).
		Where("org_id = ?", orgId).
		Order("created_at DESC").
		Find(&keys).Error
	return keys, err
}

func (kr *APIKeyRepo) DeactivateAPIKey(ctx context.Context, keyId, orgId string) error {
	return kr.Database().WithContext(ctx).
		Model(kr.keyModel).
		Where("key_id = ? AND org_id = ?", keyId, orgId).
		Update("is_active", false).Error
}
