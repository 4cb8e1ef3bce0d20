package sqlite

import (
	"context"
	"fmt"

	"freelance-flow/internal/entities"
)

const (
	projectCountQuery = `SELECT COUNT(DISTINCT project_id) FROM project_members WHERE user_id = ?`
	pendingTasksQuery = `
SELECT COUNT(*) FROM tasks
WHERE status <> ?
AND project_id IN (
    SELECT project_id FROM project_members WHERE user_id = ?
)`
)

// Dashboard counts the user's projects and their unfinished tasks.
func (s *SQLite) Dashboard(ctx context.Context, userID int64) (entities.Dashboard, error) {
	res := entities.Dashboard{}

	db := s.db.WithContext(ctx)
	if err := db.Raw(projectCountQuery, userID).Scan(&res.ProjectCount).Error; err != nil {
		return res, fmt.Errorf("project count: %w", err)
	}
	if err := db.Raw(pendingTasksQuery, entities.TaskStatusCompleted, userID).Scan(&res.PendingTasks).Error; err != nil {
		return res, fmt.Errorf("pending tasks: %w", err)
	}

	return res, nil
}
