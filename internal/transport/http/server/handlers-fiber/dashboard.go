package handlers_fiber

import (
	"net/http"

	"freelance-flow/internal/mapper"
	"freelance-flow/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the caller's project and pending task counts.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	d, err := h.uc.Dashboard(c.Context(), userID)
	if err != nil {
		return h.pageError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDashboard(d))
}
