package domain

import (
	"context"
	"fmt"

	"freelance-flow/internal/entities"
)

// Clients lists the users who share at least one project with the caller.
func (u *Usecase) Clients(ctx context.Context, userID int64) ([]entities.Client, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListClients(ctx, userID)
}

// ClientProjects lists the projects shared by the caller and clientID.
func (u *Usecase) ClientProjects(ctx context.Context, userID, clientID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if clientID <= 0 {
		return nil, fmt.Errorf("%w: client_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListSharedProjects(ctx, userID, clientID)
}
