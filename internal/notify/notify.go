// Package notify publishes chat events to subscribers outside the request path.
package notify

import (
	"context"

	"freelance-flow/internal/entities"
)

// Publisher announces stored chat messages.
type Publisher interface {
	MessagePosted(ctx context.Context, msg entities.Message) error
	Close() error
}

// Nop discards every event.
type Nop struct{}

// MessagePosted implements Publisher.
func (Nop) MessagePosted(context.Context, entities.Message) error { return nil }

// Close implements Publisher.
func (Nop) Close() error { return nil }
