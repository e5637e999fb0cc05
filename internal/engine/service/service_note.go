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
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/id"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

type NoteService struct {
	noteRepo    repo.INoteRepository
	projectRepo repo.IProjectRepository
	usageRepo   repo.IUsageRepository
}

func NewNoteService(noteRepo repo.INoteRepository, projectRepo repo.IProjectRepository, usageRepo repo.IUsageRepository) *NoteService {
	return &NoteService{
		noteRepo:    noteRepo,
		projectRepo: projectRepo,
		usageRepo:   usageRepo,
	}
}

func (ns *NoteService) CreateNote(ctx context.Context, projectId, orgId, userId string, req *model.CreateNoteReq) (*model.Note, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: note title is required", ErrInvalidState)
	}
	if _, err := ns.projectRepo.GetProjectById(ctx, projectId, orgId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	n := &model.Note{
		NoteId:    id.GetUUID(),
		ProjectId: projectId,
		OrgId:     orgId,
		Title:     req.Title,
		Content:   req.Content,
		Version:   1,
		CreatedBy: userId,
	}
	if err := ns.noteRepo.CreateNote(ctx, n); err != nil {
		log.Errorw("failed to create note", "projectId", projectId, "error", err)
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if err := ns.usageRepo.IncrementMetric(ctx, orgId, model.MetricNotesCreated, 1); err != nil {
		log.Warnw("failed to record usage", "orgId", orgId, "metric", model.MetricNotesCreated, "error", err)
	}
	return n, nil
}

func (ns *NoteService) GetNote(ctx context.Context, noteId, orgId string) (*model.Note, error) {
	n, err := ns.noteRepo.GetNoteById(ctx, noteId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: note", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch note: %w", err)
	}
	return n, nil
}

func (ns *NoteService) ListNotes(ctx context.Context, projectId, orgId string) ([]*model.Note, error) {
	if _, err := ns.projectRepo.GetProjectById(ctx, projectId, orgId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	notes, err := ns.noteRepo.ListNotesByProject(ctx, projectId, orgId)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// UpdateNote writes the given fields and bumps the version by exactly one.
func (ns *NoteService) UpdateNote(ctx context.Context, noteId, orgId string, req *model.UpdateNoteReq) (*model.Note, error) {
	if _, err := ns.GetNote(ctx, noteId, orgId); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: note title cannot be empty", ErrInvalidState)
		}
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if len(updates) > 0 {
		updates["version"] = gorm.Expr("version + ?", 1)
		if err := ns.noteRepo.UpdateNote(ctx, noteId, orgId, updates); err != nil {
			return nil, fmt.Errorf("failed to update note: %w", err)
		}
	}
	return ns.GetNote(ctx, noteId, orgId)
}

func (ns *NoteService) DeleteNote(ctx context.Context, noteId, orgId string) error {
	if _, err := ns.GetNote(ctx, noteId, orgId); err != nil {
		return err
	}
	return ns.noteRepo.DeleteNote(ctx, noteId, orgId)
}

// GenerateShareToken mints a share link for the note. Minting is idempotent:
// an already shared note keeps its token and only the access level is
// updated in place.
func (ns *NoteService) GenerateShareToken(ctx context.Context, noteId, orgId, accessLevel string) (string, error) {
	if !model.IsValidAccessLevel(accessLevel) {
		return "", fmt.Errorf("%w: unknown access level %q", ErrInvalidState, accessLevel)
	}

	n, err := ns.GetNote(ctx, noteId, orgId)
	if err != nil {
		return "", err
	}

	if n.IsShared() {
		if n.ShareAccessLevel != accessLevel {
			if err := ns.noteRepo.UpdateNote(ctx, noteId, orgId, map[string]interface{}{
				"share_access_level": accessLevel,
			}); err != nil {
				return "", fmt.Errorf("failed to update share access level: %w", err)
			}
		}
		return *n.ShareToken, nil
	}

	token := id.GetSecureToken(32)
	if err := ns.noteRepo.UpdateNote(ctx, noteId, orgId, map[string]interface{}{
		"share_token":        token,
		"share_access_level": accessLevel,
	}); err != nil {
		return "", fmt.Errorf("failed to store share token: %w", err)
	}
	return token, nil
}

// RevokeShareToken clears the share link and resets the level to view.
// Revoking an unshared note is a no-op.
func (ns *NoteService) RevokeShareToken(ctx context.Context, noteId, orgId string) error {
	if _, err := ns.GetNote(ctx, noteId, orgId); err != nil {
		return err
	}
	return ns.noteRepo.UpdateNote(ctx, noteId, orgId, map[string]interface{}{
		"share_token":        nil,
		"share_access_level": model.ShareAccessView,
	})
}

// GetNoteByShareToken serves the public share surface. The token is the sole
// authority; no credential is consulted.
func (ns *NoteService) GetNoteByShareToken(ctx context.Context, token string) (*model.Note, error) {
	n, err := ns.noteRepo.GetNoteByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: share link", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}
	return n, nil
}

// UpdateSharedNote writes content through an edit-level share link and bumps
// the version by exactly one.
func (ns *NoteService) UpdateSharedNote(ctx context.Context, token, content string) (*model.Note, error) {
	n, err := ns.GetNoteByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if n.ShareAccessLevel != model.ShareAccessEdit {
		return nil, fmt.Errorf("%w: share link is view-only", authz.ErrPermissionDenied)
	}

	if err := ns.noteRepo.UpdateNote(ctx, n.NoteId, n.OrgId, map[string]interface{}{
		"content": content,
		"version": gorm.Expr("version + ?", 1),
	}); err != nil {
		return nil, fmt.Errorf("failed to update shared note: %w", err)
	}
	return ns.GetNoteByShareToken(ctx, token)
}
