package service

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

func newJobServiceFixture(t *testing.T) (*JobService, *fakeJobRepo, *fakeProjectRepo, *fakeNoteRepo) {
	t.Helper()
	jobs := newFakeJobRepo()
	projects := newFakeProjectRepo()
	notes := newFakeNoteRepo()
	usage := newFakeUsageRepo()
	svc := NewJobService(jobs, projects, notes, usage, t.TempDir())
	return svc, jobs, projects, notes
}

func TestCreateExportJob(t *testing.T) {
	svc, jobs, projects, notes := newJobServiceFixture(t)

	p := &model.Project{ProjectId: "p-1", OrgId: "o-1", Name: "Docs", Status: model.ProjectStatusActive}
	require.NoError(t, projects.CreateProject(context.Background(), p))
	require.NoError(t, notes.CreateNote(context.Background(), &model.Note{
		NoteId: "n-1", ProjectId: "p-1", OrgId: "o-1", Title: "Readme", Content: "hello", Version: 3,
	}))

	j, err := svc.CreateExportJob(context.Background(), "o-1", "p-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobTypeExport, j.Type)

	// the worker runs detached; wait for the terminal state
	require.Eventually(t, func() bool {
		got, err := jobs.GetJobById(context.Background(), j.JobId, "o-1")
		return err == nil && got.Status == model.JobStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	got, err := jobs.GetJobById(context.Background(), j.JobId, "o-1")
	require.NoError(t, err)

	data, err := os.ReadFile(got.ResultPath)
	require.NoError(t, err)
	var out model.ImportProjectReq
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Docs", out.Project.Name)
	require.Len(t, out.Notes, 1)
	assert.Equal(t, "Readme", out.Notes[0].Title)
	assert.Equal(t, 3, out.Notes[0].Version)
}

func TestCreateExportJobUnknownProject(t *testing.T) {
	svc, _, _, _ := newJobServiceFixture(t)

	_, err := svc.CreateExportJob(context.Background(), "o-1", "p-missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetJobIsOrgScoped(t *testing.T) {
	svc, _, projects, _ := newJobServiceFixture(t)

	require.NoError(t, projects.CreateProject(context.Background(), &model.Project{
		ProjectId: "p-1", OrgId: "o-1", Name: "Docs",
	}))
	j, err := svc.CreateExportJob(context.Background(), "o-1", "p-1")
	require.NoError(t, err)

	_, err = svc.GetJob(context.Background(), j.JobId, "o-other")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetJob(context.Background(), j.JobId, "o-1")
	require.NoError(t, err)
	assert.Equal(t, j.JobId, got.JobId)
}
