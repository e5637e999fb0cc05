package model

import "time"

// Job is an asynchronous unit of work. OrgId is captured at submission time;
// status polls must match on (job_id, org_id) or the job is not found.
type Job struct {
	BaseModel
	JobId       string     `gorm:"column:job_id;uniqueIndex" json:"jobId"`
	OrgId       string     `gorm:"column:org_id;index" json:"orgId"`
	Type        string     `gorm:"column:type" json:"type"`
	Status      string     `gorm:"column:status;default:pending" json:"status"`
	ResultPath  string     `gorm:"column:result_path" json:"resultPath"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
}

func (Job) TableName() string {
	return "t_job"
}

const (
	JobTypeExport = "export"

	JobStatusPending   = "pending"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)
