package sqlite

import (
	"context"
	"errors"
	"fmt"

	"freelance-flow/internal/entities"

	"gorm.io/gorm"
)

const selectClientsQuery = `
SELECT DISTINCT u.id, u.username
FROM users u
JOIN project_members pm ON u.id = pm.user_id
WHERE pm.project_id IN (
    SELECT project_id FROM project_members WHERE user_id = ?
)
AND u.id <> ?
ORDER BY u.username`

// CreateUser inserts a user with an already hashed password.
func (s *SQLite) CreateUser(ctx context.Context, username, passwordHash string) (*entities.User, error) {
	m := userModel{Username: username, Password: passwordHash}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entities.ErrUserExists
		}
		s.log.Errorw("failed to insert user", "error", err, "username", username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.log.Infow("user created", "user_id", m.ID)
	return &entities.User{ID: m.ID, Username: m.Username, PasswordHash: m.Password}, nil
}

// GetUserByUsername looks a user up by exact username.
func (s *SQLite) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m userModel
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &entities.User{ID: m.ID, Username: m.Username, PasswordHash: m.Password}, nil
}

// ListClients returns the distinct users sharing a project with userID.
func (s *SQLite) ListClients(ctx context.Context, userID int64) ([]entities.Client, error) {
	var rows []userModel
	if err := s.db.WithContext(ctx).Raw(selectClientsQuery, userID, userID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	clients := make([]entities.Client, 0, len(rows))
	for _, r := range rows {
		clients = append(clients, entities.Client{ID: r.ID, Username: r.Username})
	}
	return clients, nil
}
