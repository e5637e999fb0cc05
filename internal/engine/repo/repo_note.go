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

type INoteRepository interface {
	CreateNote(ctx context.Context, n *model.Note) error
	GetNoteById(ctx context.Context, noteId, orgId string) (*model.Note, error)
	GetNoteByShareToken(ctx context.Context, token string) (*model.Note, error)
	ListNotesByProject(ctx context.Context, projectId, orgId string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteId, orgId string, updates map[string]interface{}) error
	DeleteNote(ctx context.Context, noteId, orgId string) error
	DeleteNotesByProject(ctx context.Context, projectId, orgId string) error
}

type NoteRepo struct {
	database.IDatabase
	noteModel *model.Note
}

func NewNoteRepo(db database.IDatabase) INoteRepository {
	return &NoteRepo{IDatabase: db, noteModel: &model.Note{}}
}

func (nr *NoteRepo) CreateNote(ctx context.Context, n *model.Note) error {
	return nr.Database().WithContext(ctx).Create(n).Error
}

func (nr *NoteRepo) GetNoteById(ctx context.Context, noteId, orgId string) (*model.Note, error) {
	var n model.Note
	err := nr.Database().WithContext(ctx).
		Where("note_id = ? AND org_id = ?", noteId, orgId).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetNoteByShareToken is the only read path that is not organization scoped:
// share links are capability tokens and carry their own authority.
func (nr *NoteRepo) GetNoteByShareToken(ctx context.Context, token string) (*model.Note, error) {
	var n model.Note
	err := nr.Database().WithContext(ctx).
		Where("share_token = ?", token).
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (nr *NoteRepo) ListNotesByProject(ctx context.Context, projectId, orgId string) ([]*model.Note, error) {
	var notes []*model.Note
	err := nr.Database().WithContext(ctx).
		Where("project_id = ? AND org_id = ?", projectId, orgId).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (nr *NoteRepo) UpdateNote(ctx context.Context, noteId, orgId string, updates map[string]interface{}) error {
	return nr.Database().WithContext(ctx).
		Model(nr.noteModel).
		Where("note_id = ? AND org_id = ?", noteId, orgId).
		Updates(updates).Error
}

func (nr *NoteRepo) DeleteNote(ctx context.Context, noteId, orgId string) error {
	return nr.Database().WithContext(ctx).
		Where("note_id = ? AND org_id = ?", noteId, orgId).
		Delete(nr.noteModel).Error
}

func (nr *NoteRepo) DeleteNotesByProject(ctx context.Context, projectId, orgId string) error {
	return nr.Database().WithContext(ctx).
		Where("project_id = ? AND org_id = ?", projectId, orgId).
		Delete(nr.noteModel).Error
}
