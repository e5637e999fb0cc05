package model

type Project struct {
	BaseModel
	ProjectId   string `gorm:"column:project_id;uniqueIndex" json:"projectId"`
	OrgId       string `gorm:"column:org_id;index" json:"orgId"`
	Name        string `gorm:"column:name;index" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	Status      string `gorm:"column:status;default:active" json:"status"` // active, archived
}

func (Project) TableName() string {
	return "t_project"
}

const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

type CreateProjectReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProjectReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ImportProjectReq mirrors the export file layout so an exported project can
// be re-imported under another organization.
type ImportProjectReq struct {
	Project struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	} `json:"project"`
	Notes []struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Version int    `json:"version"`
	} `json:"notes"`
}
