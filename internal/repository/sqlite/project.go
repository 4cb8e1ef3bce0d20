package sqlite

import (
	"context"
	"errors"
	"fmt"

	"freelance-flow/internal/entities"

	"gorm.io/gorm"
)

const (
	memberProjectsQuery = `
SELECT p.id, p.title, p.created_by
FROM projects p
JOIN project_members pm ON p.id = pm.project_id
WHERE pm.user_id = ?
ORDER BY p.id`
	sharedProjectsQuery = `
SELECT p.id, p.title, p.created_by
FROM projects p
JOIN project_members pm1 ON p.id = pm1.project_id
JOIN project_members pm2 ON p.id = pm2.project_id
WHERE pm1.user_id = ? AND pm2.user_id = ?
ORDER BY p.id`
)

// CreateProject inserts the project and its creator's membership in one transaction.
func (s *SQLite) CreateProject(ctx context.Context, title string, ownerID int64) (*entities.Project, error) {
	m := projectModel{Title: title, CreatedBy: ownerID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
		if err := tx.Create(&memberModel{ProjectID: m.ID, UserID: ownerID}).Error; err != nil {
			return fmt.Errorf("insert owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Errorw("failed to create project", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.log.Infow("project created", "project_id", m.ID, "owner_id", ownerID)
	project := m.toEntity()
	return &project, nil
}

// AddMember inserts a membership row for an existing project.
func (s *SQLite) AddMember(ctx context.Context, projectID, userID int64) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", projectID).Count(&n).Error; err != nil {
		return fmt.Errorf("project lookup: %w", err)
	}
	if n == 0 {
		return entities.ErrProjectNotFound
	}

	if err := s.db.WithContext(ctx).Create(&memberModel{ProjectID: projectID, UserID: userID}).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.ErrAlreadyMember
		}
		s.log.Errorw("failed to insert membership", "error", err, "project_id", projectID, "user_id", userID)
		return fmt.Errorf("insert membership: %w", err)
	}

	s.log.Infow("member added", "project_id", projectID, "user_id", userID)
	return nil
}

// IsMember reports whether a membership row exists.
func (s *SQLite) IsMember(ctx context.Context, projectID, userID int64) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&memberModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("membership check: %w", err)
	}
	return n > 0, nil
}

// ListMemberProjects returns every project userID belongs to.
func (s *SQLite) ListMemberProjects(ctx context.Context, userID int64) ([]entities.Project, error) {
	return s.queryProjects(ctx, memberProjectsQuery, userID)
}

// ListSharedProjects returns the projects both users belong to.
func (s *SQLite) ListSharedProjects(ctx context.Context, userID, otherID int64) ([]entities.Project, error) {
	return s.queryProjects(ctx, sharedProjectsQuery, userID, otherID)
}

func (s *SQLite) queryProjects(ctx context.Context, query string, args ...any) ([]entities.Project, error) {
	var rows []projectModel
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]entities.Project, 0, len(rows))
	for _, r := range rows {
		projects = append(projects, r.toEntity())
	}
	return projects, nil
}
