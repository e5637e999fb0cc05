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
	"time"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/pkg/database"
)

type IJobRepository interface {
	CreateJob(ctx context.Context, j *model.Job) error
	GetJobById(ctx context.Context, jobId, orgId string) (*model.Job, error)
	MarkCompleted(ctx context.Context, jobId, resultPath string) error
	MarkFailed(ctx context.Context, jobId string) error
}

type JobRepo struct {
	database.IDatabase
	jobModel *model.Job
}

func NewJobRepo(db database.IDatabase) IJobRepository {
	return &JobRepo{IDatabase: db, jobModel: &model.Job{}}
}

func (jr *JobRepo) CreateJob(ctx context.Context, j *model.Job) error {
	return jr.Database().WithContext(ctx).Create(j).Error
}

func (jr *JobRepo) GetJobById(ctx context.Context, jobId, orgId string) (*model.Job, error) {
	var j model.Job
	err := jr.Database().WithContext(ctx).
		Where("job_id = ? AND org_id = ?", jobId, orgId).
		First(&j).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (jr *JobRepo) MarkCompleted(ctx context.Context, jobId, resultPath string) error {
	now := time.Now()
	return jr.Database().WithContext(ctx).
		Model(jr.jobModel).
		Where("job_id = ?", jobId).
		Updates(map[string]interface{}{
			"status":       model.JobStatusCompleted,
			"result_path":  resultPath,
			"completed_at": &now,
		}).Error
}

func (jr *JobRepo) MarkFailed(ctx context.Context, jobId string) error {
	now := time.Now()
	return jr.Database().WithContext(ctx).
		Model(jr.jobModel).
		Where("job_id = ?", jobId).
		Updates(map[string]interface{}{
			"status":       model.JobStatusFailed,
			"completed_at": &now,
		}).Error
}
