package handlers_fiber

import (
	"errors"
	"net/http"

	"freelance-flow/internal/api"
	"freelance-flow/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, entities.ErrProjectNotFound):
		return http.StatusNotFound, "Project not found"
	case errors.Is(err, entities.ErrAccessDenied):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, entities.ErrUserExists):
		return http.StatusConflict, "Username already taken"
	case errors.Is(err, entities.ErrAlreadyMember):
		return http.StatusConflict, "User already a member"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// writeError answers JSON routes.
func writeError(c *fiber.Ctx, err error) error {
	status, msg := errorStatus(err)
	return c.Status(status).JSON(api.ErrorResponse{Error: msg})
}

// writePageError answers page and form routes with a plain-text body.
func writePageError(c *fiber.Ctx, err error) error {
	status, msg := errorStatus(err)
	return c.Status(status).SendString(msg)
}

func (h *Handler) apiError(c *fiber.Ctx, err error) error {
	h.logUnexpected(c, err)
	return writeError(c, err)
}

func (h *Handler) pageError(c *fiber.Ctx, err error) error {
	h.logUnexpected(c, err)
	return writePageError(c, err)
}

func (h *Handler) logUnexpected(c *fiber.Ctx, err error) {
	if status, _ := errorStatus(err); status == http.StatusInternalServerError {
		h.log.Errorw("request failed", "path", c.Path(), "error", err)
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: "invalid body"})
}
