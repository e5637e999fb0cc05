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

type IProjectRepository interface {
	CreateProject(ctx context.Context, p *model.Project) error
	GetProjectById(ctx context.Context, projectId, orgId string) (*model.Project, error)
	ListProjectsByOrg(ctx context.Context, orgId string) ([]*model.Project, error)
	UpdateProject(ctx context.Context, projectId, orgId string, updates map[string]interface{}) error
	DeleteProject(ctx context.Context, projectId, orgId string) error
}

type ProjectRepo struct {
	database.IDatabase
	projectModel *model.Project
}

func NewProjectRepo(db database.IDatabase) IProjectRepository {
	return &ProjectRepo{IDatabase: db, projectModel: &model.Project{}}
}

func (pr *ProjectRepo) CreateProject(ctx context.Context, p *model.Project) error {
	return pr.Database().WithContext(ctx).Create(p).Error
}

// GetProjectById scopes the lookup to the caller's organization so a
// cross-tenant id probe reads the same as a missing row.
func (pr *ProjectRepo) GetProjectById(ctx context.Context, projectId, orgId string) (*model.Project, error) {
	var p model.Project
	err := pr.Database().WithContext(ctx).
		Where("project_id = ? AND org_id = ?", projectId, orgId).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (pr *ProjectRepo) ListProjectsByOrg(ctx context.Context, orgId string) ([]*model.Project, error) {
	var projects []*model.Project
	err := pr.Database().WithContext(ctx).
		Where("org_id = ?", orgId).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (pr *ProjectRepo) UpdateProject(ctx context.Context, projectId, orgId string, updates map[string]interface{}) error {
	return pr.Database().WithContext(ctx).
		Model(pr.projectModel).
		Where("project_id = ? AND org_id = ?", projectId, orgId).
		Updates(updates).Error
}

func (pr *ProjectRepo) DeleteProject(ctx context.Context, projectId, orgId string) error {
	return pr.Database().WithContext(ctx).
		Where("project_id = ? AND org_id = ?", projectId, orgId).
		Delete(pr.projectModel).Error
}
