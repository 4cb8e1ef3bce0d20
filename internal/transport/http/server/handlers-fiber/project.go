package handlers_fiber

import (
	"net/http"

	"freelance-flow/internal/api"
	"freelance-flow/internal/mapper"
	"freelance-flow/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists the caller's projects.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	projects, err := h.uc.Projects(c.Context(), userID)
	if err != nil {
		return h.pageError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ProjectsPage{Projects: mapper.ToAPIProjects(projects)})
}

// PostCreateProject creates a project owned by the caller.
func (h *Handler) PostCreateProject(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	project, err := h.uc.CreateProject(c.Context(), userID, body.Title)
	if err != nil {
		return h.apiError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Project created", ProjectID: project.ID})
}

// PostInviteUser adds an existing user to one of the caller's projects.
func (h *Handler) PostInviteUser(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	var body api.InviteUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	if err := h.uc.InviteMember(c.Context(), userID, int64(body.ProjectID), body.Username); err != nil {
		return h.apiError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "Client invited"})
}
