package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

func newProjectServiceFixture() (*ProjectService, *fakeProjectRepo, *fakeNoteRepo, *fakeUsageRepo) {
	projects := newFakeProjectRepo()
	notes := newFakeNoteRepo()
	usage := newFakeUsageRepo()
	return NewProjectService(projects, notes, usage), projects, notes, usage
}

func TestCreateProject(t *testing.T) {
	svc, _, _, usage := newProjectServiceFixture()

	p, err := svc.CreateProject(context.Background(), "o-1", &model.CreateProjectReq{Name: "Docs", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusActive, p.Status)
	assert.EqualValues(t, 1, usage.counts["o-1/"+model.MetricProjectsCreated])

	_, err = svc.CreateProject(context.Background(), "o-1", &model.CreateProjectReq{Name: "  "})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestGetProjectCrossTenant(t *testing.T) {
	svc, _, _, _ := newProjectServiceFixture()

	p, err := svc.CreateProject(context.Background(), "o-1", &model.CreateProjectReq{Name: "Docs"})
	require.NoError(t, err)

	// same id under another org is indistinguishable from absent
	_, err = svc.GetProject(context.Background(), p.ProjectId, "o-other")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetProject(context.Background(), "p-missing", "o-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProject(t *testing.T) {
	svc, _, _, _ := newProjectServiceFixture()

	p, err := svc.CreateProject(context.Background(), "o-1", &model.CreateProjectReq{Name: "Docs"})
	require.NoError(t, err)

	bad := "frozen"
	_, err = svc.UpdateProject(context.Background(), p.ProjectId, "o-1", &model.UpdateProjectReq{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidState)

	archived := model.ProjectStatusArchived
	name := "Docs v2"
	updated, err := svc.UpdateProject(context.Background(), p.ProjectId, "o-1", &model.UpdateProjectReq{Name: &name, Status: &archived})
	require.NoError(t, err)
	assert.Equal(t, "Docs v2", updated.Name)
	assert.Equal(t, model.ProjectStatusArchived, updated.Status)
}

func TestDeleteProjectRemovesNotes(t *testing.T) {
	svc, _, notes, _ := newProjectServiceFixture()

	p, err := svc.CreateProject(context.Background(), "o-1", &model.CreateProjectReq{Name: "Docs"})
	require.NoError(t, err)
	require.NoError(t, notes.CreateNote(context.Background(), &model.Note{
		NoteId: "n-1", ProjectId: p.ProjectId, OrgId: "o-1", Title: "Readme", Version: 1,
	}))

	require.NoError(t, svc.DeleteProject(context.Background(), p.ProjectId, "o-1"))

	_, err = svc.GetProject(context.Background(), p.ProjectId, "o-1")
	require.ErrorIs(t, err, ErrNotFound)
	left, err := notes.ListNotesByProject(context.Background(), p.ProjectId, "o-1")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestImportProject(t *testing.T) {
	svc, _, notes, _ := newProjectServiceFixture()

	var req model.ImportProjectReq
	req.Project.Name = "Imported"
	req.Project.Status = "bogus" // normalized to active
	req.Notes = append(req.Notes, struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Version int    `json:"version"`
	}{Title: "Readme", Content: "hello", Version: 4})

	p, err := svc.ImportProject(context.Background(), "o-1", "u-1", &req)
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusActive, p.Status)

	imported, err := notes.ListNotesByProject(context.Background(), p.ProjectId, "o-1")
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, 4, imported[0].Version)
	assert.Equal(t, "u-1", imported[0].CreatedBy)
}
