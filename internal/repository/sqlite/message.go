package sqlite

import (
	"context"
	"fmt"

	"freelance-flow/internal/entities"

	"gorm.io/gorm"
)

const selectMessagesQuery = `
SELECT m.id, m.project_id, m.user_id, u.username, m.message, m.timestamp
FROM messages m
JOIN users u ON m.user_id = u.id
WHERE m.project_id = ?
ORDER BY m.id ASC`

// ListMessages returns all messages of a project, oldest first.
func (s *SQLite) ListMessages(ctx context.Context, projectID int64) ([]entities.Message, error) {
	var rows []messageRow
	if err := s.db.WithContext(ctx).Raw(selectMessagesQuery, projectID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]entities.Message, 0, len(rows))
	for _, r := range rows {
		msgs = append(msgs, r.toEntity())
	}
	return msgs, nil
}

// AppendMessage stores a message and returns it with its id and author username.
func (s *SQLite) AppendMessage(ctx context.Context, msg entities.Message) (*entities.Message, error) {
	m := messageModel{
		ProjectID: msg.ProjectID,
		UserID:    msg.UserID,
		Message:   msg.Body,
		Timestamp: msg.Timestamp,
	}
	var author userModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		if err := tx.Select("username").Where("id = ?", msg.UserID).First(&author).Error; err != nil {
			return fmt.Errorf("message author: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Errorw("failed to insert message", "error", err, "project_id", msg.ProjectID)
		return nil, err
	}

	msg.ID = m.ID
	msg.Username = author.Username
	return &msg, nil
}
