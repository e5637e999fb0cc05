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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/id"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
	"github.com/sunny-dhyana/teamledger-new/pkg/metrics"
)

type JobService struct {
	jobRepo     repo.IJobRepository
	projectRepo repo.IProjectRepository
	noteRepo    repo.INoteRepository
	usageRepo   repo.IUsageRepository
	exportsDir  string
}

func NewJobService(jobRepo repo.IJobRepository, projectRepo repo.IProjectRepository, noteRepo repo.INoteRepository, usageRepo repo.IUsageRepository, exportsDir string) *JobService {
	if exportsDir == "" {
		exportsDir = "exports"
	}
	return &JobService{
		jobRepo:     jobRepo,
		projectRepo: projectRepo,
		noteRepo:    noteRepo,
		usageRepo:   usageRepo,
		exportsDir:  exportsDir,
	}
}

// exportFile is the on-disk layout of a project export. It round-trips
// through model.ImportProjectReq so an export can be re-imported elsewhere.
type exportFile struct {
	Project struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	} `json:"project"`
	Notes []exportNote `json:"notes"`
}

type exportNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Version int    `json:"version"`
}

// CreateExportJob records a pending job and runs the export in the
// background. The worker is detached from the request: it keeps its own
// context so a client disconnect does not abort the export.
func (js *JobService) CreateExportJob(ctx context.Context, orgId, projectId string) (*model.Job, error) {
	if _, err := js.projectRepo.GetProjectById(ctx, projectId, orgId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	j := &model.Job{
		JobId:  id.GetULID(),
		OrgId:  orgId,
		Type:   model.JobTypeExport,
		Status: model.JobStatusPending,
	}
	if err := js.jobRepo.CreateJob(ctx, j); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := js.usageRepo.IncrementMetric(ctx, orgId, model.MetricExportsRequested, 1); err != nil {
		log.Warnw("failed to record usage", "orgId", orgId, "metric", model.MetricExportsRequested, "error", err)
	}

	go js.runExport(j.JobId, orgId, projectId)
	return j, nil
}

// GetJob requires the job to belong to the caller's organization; a job id
// from another tenant reads as not found.
func (js *JobService) GetJob(ctx context.Context, jobId, orgId string) (*model.Job, error) {
	j, err := js.jobRepo.GetJobById(ctx, jobId, orgId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	return j, nil
}

func (js *JobService) runExport(jobId, orgId, projectId string) {
	ctx := context.Background()

	resultPath, err := js.writeExport(ctx, jobId, orgId, projectId)
	if err != nil {
		log.Errorw("export job failed", "jobId", jobId, "orgId", orgId, "error", err)
		metrics.ExportJobsTotal.WithLabelValues(model.JobStatusFailed).Inc()
		if markErr := js.jobRepo.MarkFailed(ctx, jobId); markErr != nil {
			log.Errorw("failed to mark job failed", "jobId", jobId, "error", markErr)
		}
		return
	}

	if err := js.jobRepo.MarkCompleted(ctx, jobId, resultPath); err != nil {
		log.Errorw("failed to mark job completed", "jobId", jobId, "error", err)
		return
	}
	metrics.ExportJobsTotal.WithLabelValues(model.JobStatusCompleted).Inc()
	log.Infow("export job completed", "jobId", jobId, "orgId", orgId, "resultPath", resultPath)
}

func (js *JobService) writeExport(ctx context.Context, jobId, orgId, projectId string) (string, error) {
	p, err := js.projectRepo.GetProjectById(ctx, projectId, orgId)
	if err != nil {
		return "", fmt.Errorf("failed to fetch project: %w", err)
	}

	out := &exportFile{}
	out.Project.Name = p.Name
	out.Project.Description = p.Description
	out.Project.Status = p.Status

	notes, err := js.noteRepo.ListNotesByProject(ctx, projectId, orgId)
	if err != nil {
		return "", fmt.Errorf("failed to list notes: %w", err)
	}
	for _, n := range notes {
		out.Notes = append(out.Notes, exportNote{
			Title:   n.Title,
			Content: n.Content,
			Version: n.Version,
		})
	}

	if err := os.MkdirAll(js.exportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create exports dir: %w", err)
	}
	resultPath := filepath.Join(js.exportsDir, jobId+".json")

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(resultPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return resultPath, nil
}
