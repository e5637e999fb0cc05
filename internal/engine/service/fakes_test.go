package service

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
)

// In-memory repository fakes. They mirror the gorm-backed implementations'
// contracts, including gorm.ErrRecordNotFound on misses and org-scoped
// predicates on every lookup.

type fakeUserRepo struct {
	users map[string]*model.User // by userId
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *model.User) error {
	f.users[u.UserId] = u
	return nil
}

func (f *fakeUserRepo) GetUserById(_ context.Context, userId string) (*model.User, error) {
	if u, ok := f.users[userId]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) CountUsersByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

type fakeOrgRepo struct {
	orgs map[string]*model.Organization // by orgId
	memberships *fakeMembershipRepo
}

func newFakeOrgRepo(memberships *fakeMembershipRepo) *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[string]*model.Organization), memberships: memberships}
}

func (f *fakeOrgRepo) CreateOrganization(_ context.Context, org *model.Organization) error {
	f.orgs[org.OrgId] = org
	return nil
}

func (f *fakeOrgRepo) CreateOrganizationWithOwner(ctx context.Context, org *model.Organization, owner *model.Membership) error {
	f.orgs[org.OrgId] = org
	return f.memberships.CreateMembership(ctx, owner)
}

func (f *fakeOrgRepo) GetOrganizationById(_ context.Context, orgId string) (*model.Organization, error) {
	if org, ok := f.orgs[orgId]; ok {
		return org, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrgRepo) GetOrganizationByInviteToken(_ context.Context, token string) (*model.Organization, error) {
	for _, org := range f.orgs {
		if org.InviteToken != nil && *org.InviteToken == token {
			return org, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrgRepo) CountOrganizationsBySlug(_ context.Context, slug string) (int64, error) {
	var n int64
	for _, org := range f.orgs {
		if org.Slug == slug {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrgRepo) SetInviteToken(_ context.Context, orgId, token string) error {
	if org, ok := f.orgs[orgId]; ok {
		org.InviteToken = &token
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeMembershipRepo struct {
	memberships map[string]*model.Membership // by membershipId
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[string]*model.Membership)}
}

func (f *fakeMembershipRepo) CreateMembership(_ context.Context, m *model.Membership) error {
	f.memberships[m.MembershipId] = m
	return nil
}

func (f *fakeMembershipRepo) GetMembership(_ context.Context, userId, orgId string) (*model.Membership, error) {
	for _, m := range f.memberships {
		if m.UserId == userId && m.OrgId == orgId {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) GetMembershipById(_ context.Context, membershipId, orgId string) (*model.Membership, error) {
	if m, ok := f.memberships[membershipId]; ok && m.OrgId == orgId {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) ListMembershipsByUser(_ context.Context, userId string) ([]*model.Membership, error) {
	var out []*model.Membership
	for _, m := range f.memberships {
		if m.UserId == userId {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) ListMembershipsByOrg(_ context.Context, orgId string) ([]*model.Membership, error) {
	var out []*model.Membership
	for _, m := range f.memberships {
		if m.OrgId == orgId {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) CountAdmins(_ context.Context, orgId string) (int64, error) {
	var n int64
	for _, m := range f.memberships {
		if m.OrgId == orgId && model.IsAdminRole(m.Role) {
			n++
		}
	}
	return n, nil
}

func (f *fakeMembershipRepo) UpdateRole(_ context.Context, membershipId, orgId, role string) error {
	if m, ok := f.memberships[membershipId]; ok && m.OrgId == orgId {
		m.Role = role
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) DeleteMembership(_ context.Context, membershipId, orgId string) error {
	if m, ok := f.memberships[membershipId]; ok && m.OrgId == orgId {
		delete(f.memberships, membershipId)
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*model.Project // by projectId
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*model.Project)}
}

func (f *fakeProjectRepo) CreateProject(_ context.Context, p *model.Project) error {
	f.projects[p.ProjectId] = p
	return nil
}

func (f *fakeProjectRepo) GetProjectById(_ context.Context, projectId, orgId string) (*model.Project, error) {
	if p, ok := f.projects[projectId]; ok && p.OrgId == orgId {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) ListProjectsByOrg(_ context.Context, orgId string) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range f.projects {
		if p.OrgId == orgId {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) UpdateProject(_ context.Context, projectId, orgId string, updates map[string]interface{}) error {
	p, ok := f.projects[projectId]
	if !ok || p.OrgId != orgId {
		return nil
	}
	if v, ok := updates["name"].(string); ok {
		p.Name = v
	}
	if v, ok := updates["description"].(string); ok {
		p.Description = v
	}
	if v, ok := updates["status"].(string); ok {
		p.Status = v
	}
	return nil
}

func (f *fakeProjectRepo) DeleteProject(_ context.Context, projectId, orgId string) error {
	if p, ok := f.projects[projectId]; ok && p.OrgId == orgId {
		delete(f.projects, projectId)
	}
	return nil
}

type fakeNoteRepo struct {
	notes map[string]*model.Note // by noteId
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*model.Note)}
}

func (f *fakeNoteRepo) CreateNote(_ context.Context, n *model.Note) error {
	f.notes[n.NoteId] = n
	return nil
}

func (f *fakeNoteRepo) GetNoteById(_ context.Context, noteId, orgId string) (*model.Note, error) {
	if n, ok := f.notes[noteId]; ok && n.OrgId == orgId {
		return n, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNoteRepo) GetNoteByShareToken(_ context.Context, token string) (*model.Note, error) {
	for _, n := range f.notes {
		if n.ShareToken != nil && *n.ShareToken == token {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNoteRepo) ListNotesByProject(_ context.Context, projectId, orgId string) ([]*model.Note, error) {
	var out []*model.Note
	for _, n := range f.notes {
		if n.ProjectId == projectId && n.OrgId == orgId {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) UpdateNote(_ context.Context, noteId, orgId string, updates map[string]interface{}) error {
	n, ok := f.notes[noteId]
	if !ok || n.OrgId != orgId {
		return nil
	}
	for k, v := range updates {
		switch k {
		case "title":
			n.Title = v.(string)
		case "content":
			n.Content = v.(string)
		case "version":
			// the real repo sends a store-side increment expression
			if _, isExpr := v.(clause.Expr); isExpr {
				n.Version++
			} else if i, isInt := v.(int); isInt {
				n.Version = i
			}
		case "share_token":
			if v == nil {
				n.ShareToken = nil
			} else if s, isStr := v.(string); isStr {
				n.ShareToken = &s
			}
		case "share_access_level":
			n.ShareAccessLevel = v.(string)
		}
	}
	return nil
}

func (f *fakeNoteRepo) DeleteNote(_ context.Context, noteId, orgId string) error {
	if n, ok := f.notes[noteId]; ok && n.OrgId == orgId {
		delete(f.notes, noteId)
	}
	return nil
}

func (f *fakeNoteRepo) DeleteNotesByProject(_ context.Context, projectId, orgId string) error {
	for id, n := range f.notes {
		if n.ProjectId == projectId && n.OrgId == orgId {
			delete(f.notes, id)
		}
	}
	return nil
}

type fakeAPIKeyRepo struct {
	keys map[string]*model.APIKey // by keyId
}

func newFakeAPIKeyRepo() *fakeAPIKeyRepo {
	return &fakeAPIKeyRepo{keys: make(map[string]*model.APIKey)}
}

func (f *fakeAPIKeyRepo) CreateAPIKey(_ context.Context, k *model.APIKey) error {
	f.keys[k.KeyId] = k
	return nil
}

func (f *fakeAPIKeyRepo) GetByHash(_ context.Context, keyHash string) (*model.APIKey, error) {
	for _, k := range f.keys {
		if k.KeyHash == keyHash {
			return k, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAPIKeyRepo) GetAPIKeyById(_ context.Context, keyId, orgId string) (*model.APIKey, error) {
	if k, ok := f.keys[keyId]; ok && k.OrgId == orgId {
		return k, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAPIKeyRepo) ListAPIKeysByOrg(_ context.Context, orgId string) ([]*model.APIKey, error) {
	var out []*model.APIKey
	for _, k := range f.keys {
		if k.OrgId == orgId {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeAPIKeyRepo) DeactivateAPIKey(_ context.Context, keyId, orgId string) error {
	if k, ok := f.keys[keyId]; ok && k.OrgId == orgId {
		k.IsActive = false
	}
	return nil
}

type fakeUsageRepo struct {
	counts map[string]int64 // orgId + "/" + metric
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{counts: make(map[string]int64)}
}

func (f *fakeUsageRepo) IncrementMetric(_ context.Context, orgId, metricName string, delta int64) error {
	f.counts[orgId+"/"+metricName] += delta
	return nil
}

func (f *fakeUsageRepo) ListMetricsByOrg(_ context.Context, orgId string) ([]*model.UsageMetric, error) {
	var out []*model.UsageMetric
	for key, v := range f.counts {
		if len(key) > len(orgId) && key[:len(orgId)] == orgId {
			out = append(out, &model.UsageMetric{OrgId: orgId, MetricName: key[len(orgId)+1:], Value: v})
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs map[string]*model.Job // by jobId
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*model.Job)}
}

func (f *fakeJobRepo) CreateJob(_ context.Context, j *model.Job) error {
	f.jobs[j.JobId] = j
	return nil
}

func (f *fakeJobRepo) GetJobById(_ context.Context, jobId, orgId string) (*model.Job, error) {
	if j, ok := f.jobs[jobId]; ok && j.OrgId == orgId {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeJobRepo) MarkCompleted(_ context.Context, jobId, resultPath string) error {
	if j, ok := f.jobs[jobId]; ok {
		now := time.Now()
		j.Status = model.JobStatusCompleted
		j.ResultPath = resultPath
		j.CompletedAt = &now
	}
	return nil
}

func (f *fakeJobRepo) MarkFailed(_ context.Context, jobId string) error {
	if j, ok := f.jobs[jobId]; ok {
		now := time.Now()
		j.Status = model.JobStatusFailed
		j.CompletedAt = &now
	}
	return nil
}
