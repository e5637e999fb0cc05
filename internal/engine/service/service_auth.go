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

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/consts"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/http"
	"github.com/sunny-dhyana/teamledger-new/pkg/http/jwt"
	"github.com/sunny-dhyana/teamledger-new/pkg/id"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

type AuthService struct {
	userRepo       repo.IUserRepository
	membershipRepo repo.IMembershipRepository
	rdb            *redis.Client
	auth           http.Auth
}

func NewAuthService(userRepo repo.IUserRepository, membershipRepo repo.IMembershipRepository, rdb *redis.Client, auth http.Auth) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		rdb:            rdb,
		auth:           auth,
	}
}

func (as *AuthService) Register(ctx context.Context, req *model.RegisterReq) (*model.UserInfo, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidState)
	}

	count, err := as.userRepo.CountUsersByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidState)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &model.User{
		UserId:    id.GetUUID(),
		Email:     req.Email,
		Password:  string(hash),
		Name:      req.Name,
		IsEnabled: 1,
	}
	if err := as.userRepo.CreateUser(ctx, u); err != nil {
		log.Errorw("failed to create user", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	info := model.ToUserInfo(u)
	return &info, nil
}

// Login verifies the password and mints a token without organization
// context. The caller switches into an organization afterwards, which
// re-mints the token with org claims.
func (as *AuthService) Login(ctx context.Context, req *model.LoginReq) (*model.LoginResp, error) {
	u, err := as.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: incorrect email or password", authz.ErrInvalidCredential)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u.IsEnabled != 1 {
		return nil, fmt.Errorf("%w: account disabled", authz.ErrInvalidCredential)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: incorrect email or password", authz.ErrInvalidCredential)
	}

	token, err := jwt.GenToken(u.UserId, "", "", "", []byte(as.auth.SecretKey), as.auth.AccessExpire)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	if err := as.markSessionLive(ctx, u.UserId); err != nil {
		log.Errorw("failed to record session", "userId", u.UserId, "error", err)
	}

	return &model.LoginResp{
		UserInfo:    model.ToUserInfo(u),
		AccessToken: token,
		TokenType:   consts.TokenType,
	}, nil
}

// SwitchOrganization re-mints the caller's token bound to the given
// organization. The role baked into the token is read live here; afterwards
// it can go stale for at most the token TTL.
func (as *AuthService) SwitchOrganization(ctx context.Context, userId, orgId string) (*model.LoginResp, error) {
	u, err := as.userRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	m, err := as.membershipRepo.GetMembership(ctx, userId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}

	token, err := jwt.GenToken(userId, orgId, m.Role, m.MembershipId, []byte(as.auth.SecretKey), as.auth.AccessExpire)
	if err != nil {
		return nil, fmt.Errorf("failed to mint token: %w", err)
	}

	if err := as.markSessionLive(ctx, userId); err != nil {
		log.Errorw("failed to record session", "userId", userId, "error", err)
	}

	return &model.LoginResp{
		UserInfo:    model.ToUserInfo(u),
		AccessToken: token,
		TokenType:   consts.TokenType,
	}, nil
}

func (as *AuthService) Logout(ctx context.Context, userId string) error {
	if as.rdb == nil {
		return nil
	}
	return as.rdb.Del(ctx, consts.SessionKey+userId).Err()
}

// IsSessionLive reports whether the user's session key is still present.
// Returns true when no redis is configured so single-binary deployments keep
// working without one.
func (as *AuthService) IsSessionLive(ctx context.Context, userId string) (bool, error) {
	if as.rdb == nil {
		return true, nil
	}
	n, err := as.rdb.Exists(ctx, consts.SessionKey+userId).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (as *AuthService) markSessionLive(ctx context.Context, userId string) error {
	if as.rdb == nil {
		return nil
	}
	return as.rdb.Set(ctx, consts.SessionKey+userId, 1, as.auth.AccessExpire).Err()
}
