package handlers_fiber

import (
	"net/http"

	"freelance-flow/internal/api"
	"freelance-flow/internal/mapper"
	"freelance-flow/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetClients lists users sharing at least one project with the caller.
func (h *Handler) GetClients(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	clients, err := h.uc.Clients(c.Context(), userID)
	if err != nil {
		return h.pageError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ClientsPage{Clients: mapper.ToAPIClients(clients)})
}

// GetClientProjects lists the projects shared by the caller and the client.
func (h *Handler) GetClientProjects(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	clientID, err := c.ParamsInt("client_id")
	if err != nil || clientID <= 0 {
		return c.Status(http.StatusNotFound).SendString("Not found")
	}

	projects, err := h.uc.ClientProjects(c.Context(), userID, int64(clientID))
	if err != nil {
		return h.pageError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ProjectsPage{Projects: mapper.ToAPIProjects(projects)})
}
