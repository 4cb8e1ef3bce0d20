package handlers_fiber

import (
	"net/http"

	"freelance-flow/internal/api"
	"freelance-flow/internal/mapper"
	"freelance-flow/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetChat returns a project's chat history to a member.
func (h *Handler) GetChat(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	projectID, err := c.ParamsInt("project_id")
	if err != nil || projectID <= 0 {
		return c.Status(http.StatusNotFound).SendString("Not found")
	}

	msgs, err := h.uc.Messages(c.Context(), userID, int64(projectID))
	if err != nil {
		return h.pageError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ChatPage{
		ProjectID: int64(projectID),
		Messages:  mapper.ToAPIChatMessages(msgs),
	})
}

// PostSendMessage posts a message to a project chat.
func (h *Handler) PostSendMessage(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)

	var body api.SendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	if _, err := h.uc.SendMessage(c.Context(), userID, int64(body.ProjectID), body.Message); err != nil {
		return h.apiError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MessageResponse{Message: "sent"})
}
