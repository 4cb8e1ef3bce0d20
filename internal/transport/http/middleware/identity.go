package middleware

import (
	"context"
	"errors"
	"net/http"

	"freelance-flow/internal/api"
	"freelance-flow/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// SessionResolver maps a session token to a user id.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (int64, error)
}

// Identity resolves the session cookie and stores the caller's user id for
// downstream handlers. Requests without a valid session pass through anonymous.
func Identity(sessions SessionResolver, cookieName string, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}

		userID, err := sessions.Resolve(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) && !errors.Is(err, session.ErrInvalidToken) {
				log.Errorw("failed to resolve session", "error", err)
			}
			return c.Next()
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated caller, if any.
func UserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(userIDKey).(int64)
	return id, ok && id > 0
}

// RequirePage redirects anonymous callers to the login page.
func RequirePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserID(c); !ok {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}

// RequireAPI rejects anonymous callers with 401.
func RequireAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserID(c); !ok {
			return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{Error: "Unauthorized"})
		}
		return c.Next()
	}
}
