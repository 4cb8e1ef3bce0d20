package postgres

import (
	"context"
	"fmt"

	"freelance-flow/internal/entities"
)

const (
	projectCountQuery = `SELECT COUNT(DISTINCT project_id) FROM project_members WHERE user_id = $1`
	pendingTasksQuery = `
SELECT COUNT(*) FROM tasks
WHERE status <> $2
AND project_id IN (
    SELECT project_id FROM project_members WHERE user_id = $1
)`
)

// Dashboard counts the user's projects and their unfinished tasks.
func (p *Postgres) Dashboard(ctx context.Context, userID int64) (entities.Dashboard, error) {
	res := entities.Dashboard{}

	if err := p.db.QueryRow(ctx, projectCountQuery, userID).Scan(&res.ProjectCount); err != nil {
		return res, fmt.Errorf("project count: %w", err)
	}
	if err := p.db.QueryRow(ctx, pendingTasksQuery, userID, entities.TaskStatusCompleted).Scan(&res.PendingTasks); err != nil {
		return res, fmt.Errorf("pending tasks: %w", err)
	}

	return res, nil
}
