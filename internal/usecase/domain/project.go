// Package domain contains application services orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"
	"strings"

	"freelance-flow/internal/entities"
)

type newProject struct {
	Title string `validate:"required,max=200"`
}

// Dashboard returns the caller's project and pending task counts.
func (u *Usecase) Dashboard(ctx context.Context, userID int64) (entities.Dashboard, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Dashboard(ctx, userID)
}

// Projects lists the projects the caller belongs to.
func (u *Usecase) Projects(ctx context.Context, userID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListMemberProjects(ctx, userID)
}

// CreateProject creates a project owned by the caller, who becomes its first member.
func (u *Usecase) CreateProject(ctx context.Context, userID int64, title string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req := newProject{Title: strings.TrimSpace(title)}
	if err := u.check(req); err != nil {
		return nil, err
	}

	project, err := u.repo.CreateProject(ctx, req.Title, userID)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project create", "project_id", project.ID, "user_id", userID)
	return project, nil
}

// InviteMember adds the user named username to a project the inviter belongs to.
func (u *Usecase) InviteMember(ctx context.Context, inviterID, projectID int64, username string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" || projectID <= 0 {
		return fmt.Errorf("%w: username and project_id are required", entities.ErrInvalidArgument)
	}

	if err := u.requireMember(ctx, projectID, inviterID); err != nil {
		return err
	}

	invitee, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := u.repo.AddMember(ctx, projectID, invitee.ID); err != nil {
		return err
	}
	u.log.Infow("member invited", "project_id", projectID, "inviter_id", inviterID, "user_id", invitee.ID)
	return nil
}
