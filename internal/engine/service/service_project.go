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

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/id"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

type ProjectService struct {
	projectRepo repo.IProjectRepository
	noteRepo    repo.INoteRepository
	usageRepo   repo.IUsageRepository
}

func NewProjectService(projectRepo repo.IProjectRepository, noteRepo repo.INoteRepository, usageRepo repo.IUsageRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		noteRepo:    noteRepo,
		usageRepo:   usageRepo,
	}
}

func (ps *ProjectService) CreateProject(ctx context.Context, orgId string, req *model.CreateProjectReq) (*model.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidState)
	}

	p := &model.Project{
		ProjectId:   id.GetUUID(),
		OrgId:       orgId,
		Name:        req.Name,
		Description: req.Description,
		Status:      model.ProjectStatusActive,
	}
	if err := ps.projectRepo.CreateProject(ctx, p); err != nil {
		log.Errorw("failed to create project", "orgId", orgId, "error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := ps.usageRepo.IncrementMetric(ctx, orgId, model.MetricProjectsCreated, 1); err != nil {
		log.Warnw("failed to record usage", "orgId", orgId, "metric", model.MetricProjectsCreated, "error", err)
	}
	return p, nil
}

func (ps *ProjectService) GetProject(ctx context.Context, projectId, orgId string) (*model.Project, error) {
	p, err := ps.projectRepo.GetProjectById(ctx, projectId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return p, nil
}

func (ps *ProjectService) ListProjects(ctx context.Context, orgId string) ([]*model.Project, error) {
	projects, err := ps.projectRepo.ListProjectsByOrg(ctx, orgId)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (ps *ProjectService) UpdateProject(ctx context.Context, projectId, orgId string, req *model.UpdateProjectReq) (*model.Project, error) {
	if _, err := ps.GetProject(ctx, projectId, orgId); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: project name cannot be empty", ErrInvalidState)
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		if *req.Status != model.ProjectStatusActive && *req.Status != model.ProjectStatusArchived {
			return nil, fmt.Errorf("%w: unknown project status %q", ErrInvalidState, *req.Status)
		}
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := ps.projectRepo.UpdateProject(ctx, projectId, orgId, updates); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}
	return ps.GetProject(ctx, projectId, orgId)
}

// DeleteProject removes the project and its notes.
func (ps *ProjectService) DeleteProject(ctx context.Context, projectId, orgId string) error {
	if _, err := ps.GetProject(ctx, projectId, orgId); err != nil {
		return err
	}
	if err := ps.noteRepo.DeleteNotesByProject(ctx, projectId, orgId); err != nil {
		return fmt.Errorf("failed to delete project notes: %w", err)
	}
	return ps.projectRepo.DeleteProject(ctx, projectId, orgId)
}

// ImportProject recreates a project and its notes from an export file under
// the caller's organization. Identifiers are always re-minted; the import
// never adopts ids from the file.
func (ps *ProjectService) ImportProject(ctx context.Context, orgId, userId string, req *model.ImportProjectReq) (*model.Project, error) {
	if strings.TrimSpace(req.Project.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidState)
	}

	status := req.Project.Status
	if status != model.ProjectStatusActive && status != model.ProjectStatusArchived {
		status = model.ProjectStatusActive
	}

	p := &model.Project{
		ProjectId:   id.GetUUID(),
		OrgId:       orgId,
		Name:        req.Project.Name,
		Description: req.Project.Description,
		Status:      status,
	}
	if err := ps.projectRepo.CreateProject(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	for _, n := range req.Notes {
		version := n.Version
		if version < 1 {
			version = 1
		}
		note := &model.Note{
			NoteId:    id.GetUUID(),
			ProjectId: p.ProjectId,
			OrgId:     orgId,
			Title:     n.Title,
			Content:   n.Content,
			Version:   version,
			CreatedBy: userId,
		}
		if err := ps.noteRepo.CreateNote(ctx, note); err != nil {
			return nil, fmt.Errorf("failed to import note: %w", err)
		}
	}

	if err := ps.usageRepo.IncrementMetric(ctx, orgId, model.MetricProjectsCreated, 1); err != nil {
		log.Warnw("failed to record usage", "orgId", orgId, "metric", model.MetricProjectsCreated, "error", err)
	}
	return p, nil
}
