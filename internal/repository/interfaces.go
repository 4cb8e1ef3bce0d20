// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"freelance-flow/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	ListClients(ctx context.Context, userID int64) ([]entities.Client, error)
}

// ProjectInterface exposes project and membership operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, title string, ownerID int64) (*entities.Project, error)
	AddMember(ctx context.Context, projectID, userID int64) error
	IsMember(ctx context.Context, projectID, userID int64) (bool, error)
	ListMemberProjects(ctx context.Context, userID int64) ([]entities.Project, error)
	ListSharedProjects(ctx context.Context, userID, otherID int64) ([]entities.Project, error)
}

// MessageInterface exposes chat operations.
type MessageInterface interface {
	ListMessages(ctx context.Context, projectID int64) ([]entities.Message, error)
	AppendMessage(ctx context.Context, msg entities.Message) (*entities.Message, error)
}

// DashboardInterface exposes aggregated counters.
type DashboardInterface interface {
	Dashboard(ctx context.Context, userID int64) (entities.Dashboard, error)
}
