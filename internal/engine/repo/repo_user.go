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

type IUserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserById(ctx context.Context, userId string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CountUsersByEmail(ctx context.Context, email string) (int64, error)
}

type UserRepo struct {
	database.IDatabase
	userModel *model.User
}

func NewUserRepo(db database.IDatabase) IUserRepository {
	return &UserRepo{IDatabase: db, userModel: &model.User{}}
}

func (ur *UserRepo) CreateUser(ctx context.Context, u *model.User) error {
	return ur.Database().WithContext(ctx).Create(u).Error
}

func (ur *UserRepo) GetUserById(ctx context.Context, userId string) (*model.User, error) {
	var u model.User
	err := ur.Database().WithContext(ctx).
		Where("user_id = ?", userId).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := ur.Database().WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UserRepo) CountUsersByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := ur.Database().WithContext(ctx).
		Model(ur.userModel).
		Where("email = ?", email).
		Count(&count).Error
	return count, err
}
