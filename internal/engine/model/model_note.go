package model

// Note content row. ShareToken is globally unique across all notes; nil means
// the note is not shared. ShareAccessLevel only has meaning while a token is
// present and resets to view on revoke.
type Note struct {
	BaseModel
	NoteId           string  `gorm:"column:note_id;uniqueIndex" json:"noteId"`
	ProjectId        string  `gorm:"column:project_id;index" json:"projectId"`
	OrgId            string  `gorm:"column:org_id;index" json:"orgId"`
	Title            string  `gorm:"column:title;index" json:"title"`
	Content          string  `gorm:"column:content;type:text" json:"content"`
	Version          int     `gorm:"column:version;default:1" json:"version"`
	CreatedBy        string  `gorm:"column:created_by" json:"createdBy"`
	ShareToken       *string `gorm:"column:share_token;uniqueIndex" json:"-"`
	ShareAccessLevel string  `gorm:"column:share_access_level;default:view" json:"-"`
}

func (Note) TableName() string {
	return "t_note"
}

// Share access levels.
const (
	ShareAccessView = "view"
	ShareAccessEdit = "edit"
)

// IsValidAccessLevel reports whether level is a known share access level.
func IsValidAccessLevel(level string) bool {
	return level == ShareAccessView || level == ShareAccessEdit
}

func (n *Note) IsShared() bool {
	return n.ShareToken != nil
}

type CreateNoteReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ShareNoteReq struct {
	AccessLevel string `json:"accessLevel"`
}

type SharedNoteUpdateReq struct {
	Content string `json:"content"`
}

type NoteResp struct {
	NoteId    string `json:"noteId"`
	ProjectId string `json:"projectId"`
	OrgId     string `json:"orgId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Version   int    `json:"version"`
	CreatedBy string `json:"createdBy"`
	IsShared  bool   `json:"isShared"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func ToNoteResp(n *Note) *NoteResp {
	return &NoteResp{
		NoteId:    n.NoteId,
		ProjectId: n.ProjectId,
		OrgId:     n.OrgId,
		Title:     n.Title,
		Content:   n.Content,
		Version:   n.Version,
		CreatedBy: n.CreatedBy,
		IsShared:  n.IsShared(),
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: n.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// SharedNoteResp is the public-safe projection served on share links. It
// never exposes org, creator or share token internals.
type SharedNoteResp struct {
	NoteId      string `json:"noteId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Version     int    `json:"version"`
	AccessLevel string `json:"accessLevel"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func ToSharedNoteResp(n *Note) *SharedNoteResp {
	return &SharedNoteResp{
		NoteId:      n.NoteId,
		Title:       n.Title,
		Content:     n.Content,
		Version:     n.Version,
		AccessLevel: n.ShareAccessLevel,
		CreatedAt:   n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   n.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
