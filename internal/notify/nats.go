package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"freelance-flow/internal/entities"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// MessageEvent is the JSON payload published for each stored message.
type MessageEvent struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// NATS publishes chat events on <prefix>.<project_id>.
type NATS struct {
	conn   *nats.Conn
	prefix string
	log    *zap.SugaredLogger
}

// NewNATS connects to the server at url.
func NewNATS(url, prefix string, log *zap.SugaredLogger) (*NATS, error) {
	log = log.Named("notify.nats")
	conn, err := nats.Connect(url,
		nats.Name("freelance-flow"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnw("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Infow("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	log.Infow("nats connected", "url", conn.ConnectedUrl())
	return &NATS{conn: conn, prefix: prefix, log: log}, nil
}

// Subject returns the subject a project's events are published on.
func Subject(prefix string, projectID int64) string {
	return prefix + "." + strconv.FormatInt(projectID, 10)
}

// MessagePosted publishes msg to its project subject.
func (n *NATS) MessagePosted(_ context.Context, msg entities.Message) error {
	payload, err := json.Marshal(MessageEvent{
		ID:        msg.ID,
		ProjectID: msg.ProjectID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Message:   msg.Body,
		Timestamp: msg.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := n.conn.Publish(Subject(n.prefix, msg.ProjectID), payload); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}
	return nil
}

// Close flushes pending events and closes the connection.
func (n *NATS) Close() error {
	if n.conn == nil {
		return nil
	}
	err := n.conn.Drain()
	if err != nil {
		n.conn.Close()
	}
	return err
}
