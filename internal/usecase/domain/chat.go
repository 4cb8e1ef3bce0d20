package domain

import (
	"context"
	"fmt"

	"freelance-flow/internal/entities"
)

type chatLine struct {
	ProjectID int64  `validate:"gt=0"`
	Body      string `validate:"required,max=4000"`
}

// Messages returns a project's chat history, oldest first, to a member.
func (u *Usecase) Messages(ctx context.Context, userID, projectID int64) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.requireMember(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return u.repo.ListMessages(ctx, projectID)
}

// SendMessage appends a member's message to the project chat and announces it.
func (u *Usecase) SendMessage(ctx context.Context, userID, projectID int64, body string) (*entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.check(chatLine{ProjectID: projectID, Body: body}); err != nil {
		return nil, err
	}
	if err := u.requireMember(ctx, projectID, userID); err != nil {
		return nil, err
	}

	stored, err := u.repo.AppendMessage(ctx, entities.Message{
		ProjectID: projectID,
		UserID:    userID,
		Body:      body,
		Timestamp: u.now().Format(entities.MessageTimeLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}

	if err := u.pub.MessagePosted(ctx, *stored); err != nil {
		u.log.Warnw("failed to publish message event", "error", err, "message_id", stored.ID)
	}
	return stored, nil
}
