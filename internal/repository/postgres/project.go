package postgres

import (
	"context"
	"errors"
	"fmt"

	"freelance-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertProjectQuery  = `INSERT INTO projects(title, created_by) VALUES ($1, $2) RETURNING id`
	insertMemberQuery   = `INSERT INTO project_members(project_id, user_id) VALUES ($1, $2)`
	selectProjectQuery  = `SELECT id FROM projects WHERE id = $1`
	isMemberQuery       = `SELECT EXISTS (SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`
	memberProjectsQuery = `
SELECT p.id, p.title, p.created_by
FROM projects p
JOIN project_members pm ON p.id = pm.project_id
WHERE pm.user_id = $1
ORDER BY p.id`
	sharedProjectsQuery = `
SELECT p.id, p.title, p.created_by
FROM projects p
JOIN project_members pm1 ON p.id = pm1.project_id
JOIN project_members pm2 ON p.id = pm2.project_id
WHERE pm1.user_id = $1 AND pm2.user_id = $2
ORDER BY p.id`
)

// CreateProject inserts the project and its creator's membership in one transaction.
func (p *Postgres) CreateProject(ctx context.Context, title string, ownerID int64) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	project := entities.Project{Title: title, CreatedBy: ownerID}
	if err := tx.QueryRow(ctx, insertProjectQuery, title, ownerID).Scan(&project.ID); err != nil {
		p.log.Errorw("failed to insert project", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("insert project: %w", err)
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, project.ID, ownerID); err != nil {
		p.log.Errorw("failed to insert owner membership", "error", err, "project_id", project.ID)
		return nil, fmt.Errorf("insert owner membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project created", "project_id", project.ID, "owner_id", ownerID)
	return &project, nil
}

// AddMember inserts a membership row for an existing project.
func (p *Postgres) AddMember(ctx context.Context, projectID, userID int64) error {
	var id int64
	if err := p.db.QueryRow(ctx, selectProjectQuery, projectID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrProjectNotFound
		}
		return fmt.Errorf("project lookup: %w", err)
	}

	if _, err := p.db.Exec(ctx, insertMemberQuery, projectID, userID); err != nil {
		if isUniqueViolation(err) {
			return entities.ErrAlreadyMember
		}
		p.log.Errorw("failed to insert membership", "error", err, "project_id", projectID, "user_id", userID)
		return fmt.Errorf("insert membership: %w", err)
	}

	p.log.Infow("member added", "project_id", projectID, "user_id", userID)
	return nil
}

// IsMember reports whether a membership row exists.
func (p *Postgres) IsMember(ctx context.Context, projectID, userID int64) (bool, error) {
	var ok bool
	if err := p.db.QueryRow(ctx, isMemberQuery, projectID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("membership check: %w", err)
	}
	return ok, nil
}

// ListMemberProjects returns every project userID belongs to.
func (p *Postgres) ListMemberProjects(ctx context.Context, userID int64) ([]entities.Project, error) {
	return p.queryProjects(ctx, memberProjectsQuery, userID)
}

// ListSharedProjects returns the projects both users belong to.
func (p *Postgres) ListSharedProjects(ctx context.Context, userID, otherID int64) ([]entities.Project, error) {
	return p.queryProjects(ctx, sharedProjectsQuery, userID, otherID)
}

func (p *Postgres) queryProjects(ctx context.Context, query string, args ...any) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		var pr entities.Project
		if err := rows.Scan(&pr.ID, &pr.Title, &pr.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}
