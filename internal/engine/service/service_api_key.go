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

	"gorm.io/gorm"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/consts"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/id"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

type APIKeyService struct {
	keyRepo repo.IAPIKeyRepository
}

func NewAPIKeyService(keyRepo repo.IAPIKeyRepository) *APIKeyService {
	return &APIKeyService{keyRepo: keyRepo}
}

// CreateAPIKey mints a new key for the organization. The raw secret appears
// only in the returned value; at rest only its hash and display prefix
// survive.
func (ks *APIKeyService) CreateAPIKey(ctx context.Context, orgId string, req *model.CreateAPIKeyReq) (*model.APIKeyCreatedResp, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: key name is required", ErrInvalidState)
	}

	scopes, err := authz.ParseScopes(req.Scopes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if len(scopes) == 0 {
		return nil, fmt.Errorf("%w: at least one scope is required", ErrInvalidState)
	}

	secret := consts.APIKeySecretPrefix + id.GetSecureToken(32)
	k := &model.APIKey{
		KeyId:     id.GetUUID(),
		OrgId:     orgId,
		Name:      req.Name,
		KeyHash:   authz.HashAPIKey(secret),
		KeyPrefix: secret[:8],
		Scopes:    scopes.String(),
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
	}
	if err := ks.keyRepo.CreateAPIKey(ctx, k); err != nil {
		log.Errorw("failed to create api key", "orgId", orgId, "error", err)
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}

	return &model.APIKeyCreatedResp{
		APIKeyResp: *model.ToAPIKeyResp(k),
		Key:        secret,
	}, nil
}

func (ks *APIKeyService) ListAPIKeys(ctx context.Context, orgId string) ([]*model.APIKeyResp, error) {
	keys, err := ks.keyRepo.ListAPIKeysByOrg(ctx, orgId)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	resp := make([]*model.APIKeyResp, 0, len(keys))
	for _, k := range keys {
		resp = append(resp, model.ToAPIKeyResp(k))
	}
	return resp, nil
}

// RevokeAPIKey deactivates the key. Revocation is permanent; a revoked key
// is never reactivated.
func (ks *APIKeyService) RevokeAPIKey(ctx context.Context, keyId, orgId string) error {
	if _, err := ks.keyRepo.GetAPIKeyById(ctx, keyId, orgId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: api key", ErrNotFound)
		}
		return fmt.Errorf("failed to fetch api key: %w", err)
	}
	return ks.keyRepo.DeactivateAPIKey(ctx, keyId, orgId)
}
