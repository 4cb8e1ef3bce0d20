package usecase

import (
	"context"

	"freelance-flow/internal/entities"
)

// AuthUsecaseInterface abstracts registration and credential checks.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, username, password string) (*entities.User, error)
	Login(ctx context.Context, username, password string) (*entities.User, error)
}

// ProjectUsecaseInterface abstracts project-related operations.
type ProjectUsecaseInterface interface {
	Dashboard(ctx context.Context, userID int64) (entities.Dashboard, error)
	Projects(ctx context.Context, userID int64) ([]entities.Project, error)
	CreateProject(ctx context.Context, userID int64, title string) (*entities.Project, error)
	InviteMember(ctx context.Context, inviterID, projectID int64, username string) error
}

// ClientUsecaseInterface abstracts the client directory.
type ClientUsecaseInterface interface {
	Clients(ctx context.Context, userID int64) ([]entities.Client, error)
	ClientProjects(ctx context.Context, userID, clientID int64) ([]entities.Project, error)
}

// ChatUsecaseInterface abstracts project chat.
type ChatUsecaseInterface interface {
	Messages(ctx context.Context, userID, projectID int64) ([]entities.Message, error)
	SendMessage(ctx context.Context, userID, projectID int64, body string) (*entities.Message, error)
}
