package postgres

import (
	"context"
	"errors"
	"fmt"

	"freelance-flow/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertUserQuery       = `INSERT INTO users(username, password) VALUES ($1, $2) RETURNING id`
	selectUserByNameQuery = `SELECT id, username, password FROM users WHERE username = $1`
	selectClientsQuery    = `
SELECT DISTINCT u.id, u.username
FROM users u
JOIN project_members pm ON u.id = pm.user_id
WHERE pm.project_id IN (
    SELECT project_id FROM project_members WHERE user_id = $1
)
AND u.id <> $1
ORDER BY u.username`
)

// CreateUser inserts a user with an already hashed password.
func (p *Postgres) CreateUser(ctx context.Context, username, passwordHash string) (*entities.User, error) {
	u := entities.User{Username: username, PasswordHash: passwordHash}
	if err := p.db.QueryRow(ctx, insertUserQuery, username, passwordHash).Scan(&u.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to insert user", "error", err, "username", username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUserByUsername looks a user up by exact username.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByNameQuery, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListClients returns the distinct users sharing a project with userID.
func (p *Postgres) ListClients(ctx context.Context, userID int64) ([]entities.Client, error) {
	rows, err := p.db.Query(ctx, selectClientsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]entities.Client, 0)
	for rows.Next() {
		var c entities.Client
		if err := rows.Scan(&c.ID, &c.Username); err != nil {
			p.log.Errorw("failed to scan client", "error", err, "user_id", userID)
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}

	return clients, nil
}
