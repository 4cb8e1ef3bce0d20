package postgres

import (
	"context"
	"fmt"

	"freelance-flow/internal/entities"
)

const (
	selectMessagesQuery = `
SELECT m.id, m.project_id, m.user_id, u.username, m.message, m.timestamp
FROM messages m
JOIN users u ON m.user_id = u.id
WHERE m.project_id = $1
ORDER BY m.id ASC`
	insertMessageQuery = `
WITH inserted AS (
    INSERT INTO messages(project_id, user_id, message, timestamp)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id
)
SELECT inserted.id, u.username
FROM inserted
JOIN users u ON u.id = inserted.user_id`
)

// ListMessages returns all messages of a project, oldest first.
func (p *Postgres) ListMessages(ctx context.Context, projectID int64) ([]entities.Message, error) {
	rows, err := p.db.Query(ctx, selectMessagesQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]entities.Message, 0)
	for rows.Next() {
		var m entities.Message
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.Username, &m.Body, &m.Timestamp); err != nil {
			p.log.Errorw("failed to scan message", "error", err, "project_id", projectID)
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return msgs, nil
}

// AppendMessage stores a message and returns it with its id and author username.
func (p *Postgres) AppendMessage(ctx context.Context, msg entities.Message) (*entities.Message, error) {
	err := p.db.QueryRow(ctx, insertMessageQuery, msg.ProjectID, msg.UserID, msg.Body, msg.Timestamp).
		Scan(&msg.ID, &msg.Username)
	if err != nil {
		p.log.Errorw("failed to insert message", "error", err, "project_id", msg.ProjectID)
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &msg, nil
}
