package model

// UsageMetric is a per-organization counter, incremented with a store-side
// expression so concurrent writers serialize in the database.
type UsageMetric struct {
	BaseModel
	OrgId      string `gorm:"column:org_id;uniqueIndex:idx_usage_org_metric" json:"orgId"`
	MetricName string `gorm:"column:metric_name;uniqueIndex:idx_usage_org_metric" json:"metricName"`
	Value      int64  `gorm:"column:value;default:0" json:"value"`
}

func (UsageMetric) TableName() string {
	return "t_usage_metric"
}

// Metric names tracked by the services.
const (
	MetricAPICalls         = "api_calls"
	MetricNotesCreated     = "notes_created"
	MetricProjectsCreated  = "projects_created"
	MetricExportsRequested = "exports_requested"
)
