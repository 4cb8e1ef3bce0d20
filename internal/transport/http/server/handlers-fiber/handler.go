// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"context"
	"time"

	"freelance-flow/internal/usecase"

	"go.uber.org/zap"
)

// SessionManager issues, resolves and revokes login sessions.
type SessionManager interface {
	Issue(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Handler serves the web routes using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	sessions SessionManager
	cookie   CookieConfig
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(
	log *zap.SugaredLogger,
	usecase usecase.InterfaceUsecase,
	sessions SessionManager,
	cookie CookieConfig,
) *Handler {
	return &Handler{
		log:      log,
		uc:       usecase,
		sessions: sessions,
		cookie:   cookie,
	}
}
