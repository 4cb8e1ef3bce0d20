package sqlite

import "freelance-flow/internal/entities"

type userModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type projectModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	CreatedBy int64  `gorm:"not null"`
}

func (projectModel) TableName() string { return "projects" }

func (m projectModel) toEntity() entities.Project {
	return entities.Project{ID: m.ID, Title: m.Title, CreatedBy: m.CreatedBy}
}

type memberModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProjectID int64 `gorm:"uniqueIndex:idx_project_user;not null"`
	UserID    int64 `gorm:"uniqueIndex:idx_project_user;index;not null"`
}

func (memberModel) TableName() string { return "project_members" }

type taskModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProjectID int64  `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Status    string `gorm:"not null;default:Pending"`
	DueDate   string
}

func (taskModel) TableName() string { return "tasks" }

type messageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProjectID int64  `gorm:"index;not null"`
	UserID    int64  `gorm:"not null"`
	Message   string `gorm:"not null"`
	Timestamp string `gorm:"column:timestamp;not null"`
}

func (messageModel) TableName() string { return "messages" }

// messageRow is a message joined with its author.
type messageRow struct {
	ID        int64
	ProjectID int64
	UserID    int64
	Username  string
	Message   string
	Timestamp string
}

func (r messageRow) toEntity() entities.Message {
	return entities.Message{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		UserID:    r.UserID,
		Username:  r.Username,
		Body:      r.Message,
		Timestamp: r.Timestamp,
	}
}
