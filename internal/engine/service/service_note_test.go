package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

func newNoteServiceFixture(t *testing.T) (*NoteService, *model.Project, *fakeUsageRepo) {
	t.Helper()
	notes := newFakeNoteRepo()
	projects := newFakeProjectRepo()
	usage := newFakeUsageRepo()

	p := &model.Project{ProjectId: "p-1", OrgId: "o-1", Name: "Docs", Status: model.ProjectStatusActive}
	require.NoError(t, projects.CreateProject(context.Background(), p))

	return NewNoteService(notes, projects, usage), p, usage
}

func TestCreateNote(t *testing.T) {
	svc, p, usage := newNoteServiceFixture(t)

	n, err := svc.CreateNote(context.Background(), p.ProjectId, "o-1", "u-1", &model.CreateNoteReq{Title: "Readme", Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 1, n.Version)
	assert.Equal(t, "u-1", n.CreatedBy)
	assert.False(t, n.IsShared())
	assert.EqualValues(t, 1, usage.counts["o-1/"+model.MetricNotesCreated])

	// unknown project reads as not found
	_, err = svc.CreateNote(context.Background(), "p-other", "o-1", "u-1", &model.CreateNoteReq{Title: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNoteBumpsVersion(t *testing.T) {
	svc, p, _ := newNoteServiceFixture(t)

	n, err := svc.CreateNote(context.Background(), p.ProjectId, "o-1", "u-1", &model.CreateNoteReq{Title: "Readme"})
	require.NoError(t, err)

	content := "v2 content"
	updated, err := svc.UpdateNote(context.Background(), n.NoteId, "o-1", &model.UpdateNoteReq{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, content, updated.Content)
}

func TestCrossTenantNoteReadsAsNotFound(t *testing.T) {
	svc, p, _ := newNoteServiceFixture(t)

	n, err := svc.CreateNote(context.Background(), p.ProjectId, "o-1", "u-1", &model.CreateNoteReq{Title: "Readme"})
	require.NoError(t, err)

	_, err = svc.GetNote(context.Background(), n.NoteId, "o-other")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateShareTokenIdempotent(t *testing.T) {
	svc, p, _ := newNoteServiceFixture(t)

	n, err := svc.CreateNote(context.Background(), p.ProjectId, "o-1", "u-1", &model.CreateNoteReq{Title: "Readme"})
	require.NoError(t, err)

	first, err := svc.GenerateShareToken(context.Background(), n.NoteId, "o-1", model.ShareAccessView)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// re-minting keeps the token and updates the level in place
	second, err := svc.GenerateShareToken(context.Background(), n.NoteId, "o-1", model.ShareAccessEdit)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	shared, err := svc.GetNoteByShareToken(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, model.ShareAccessEdit, shared.ShareAccessLevel)

	_, err = svc.GenerateShareToken(context.Background(), n.NoteId, "o-1", "owner")
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRevokeShareToken(t *testing.T) {
	svc, p, _ := newNoteServiceFixture(t)

	n, err := svc.CreateNote(context.Background(), p.ProjectId, "o-1", "u-1", &model.CreateNoteReq{Title: "Readme"})
	require.NoError(t, err)

	token, err := svc.GenerateShareToken(context.Background(), n.NoteId, "o-1", model.ShareAccessEdit)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeShareToken(context.Background(), n.NoteId, "o-1"))

	_, err = svc.GetNoteByShareToken(context.Background(), token)
	require.ErrorIs(t, err, ErrNotFound)

	// the note itself resets to the view level
	got, err := svc.GetNote(context.Background(), n.NoteId, "o-1")
	require.NoError(t, err)
	assert.False(t, got.IsShared())
	assert.Equal(t, model.ShareAccessView, got.ShareAccessLevel)
}

func TestUpdateSharedNote(t *testing.T) {
	svc, p, _ := newNoteServiceFixture(t)

	n, err := svc.CreateNote(context.Background(), p.ProjectId, "o-1", "u-1", &model.CreateNoteReq{Title: "Readme", Content: "v1"})
	require.NoError(t, err)

	viewToken, err := svc.GenerateShareToken(context.Background(), n.NoteId, "o-1", model.ShareAccessView)
	require.NoError(t, err)

	_, err = svc.UpdateSharedNote(context.Background(), viewToken, "nope")
	require.ErrorIs(t, err, authz.ErrPermissionDenied)

	_, err = svc.GenerateShareToken(context.Background(), n.NoteId, "o-1", model.ShareAccessEdit)
	require.NoError(t, err)

	updated, err := svc.UpdateSharedNote(context.Background(), viewToken, "edited anonymously")
	require.NoError(t, err)
	assert.Equal(t, "edited anonymously", updated.Content)
	assert.Equal(t, 2, updated.Version)

	_, err = svc.UpdateSharedNote(context.Background(), "unknown-token", "x")
	require.ErrorIs(t, err, ErrNotFound)
}
