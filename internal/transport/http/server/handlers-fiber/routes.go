package handlers_fiber

import (
	"freelance-flow/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the web routes. Identity must already be resolved by
// middleware.Identity. authGuards run in front of the login and register forms.
func (h *Handler) RegisterRoutes(r fiber.Router, authGuards ...fiber.Handler) {
	requirePage := middleware.RequirePage()
	requireAPI := middleware.RequireAPI()

	r.Get("/", h.GetRoot)
	r.Get("/register", h.GetRegister)
	r.Post("/register", guarded(authGuards, h.PostRegister)...)
	r.Get("/login", h.GetLogin)
	r.Post("/login", guarded(authGuards, h.PostLogin)...)
	r.Get("/logout", h.GetLogout)

	r.Get("/dashboard", requirePage, h.GetDashboard)
	r.Get("/clients", requirePage, h.GetClients)
	r.Get("/client-projects/:client_id", requirePage, h.GetClientProjects)
	r.Get("/projects", requirePage, h.GetProjects)
	r.Get("/chat/:project_id", requirePage, h.GetChat)

	r.Post("/create-project", requireAPI, h.PostCreateProject)
	r.Post("/invite-user", requireAPI, h.PostInviteUser)
	r.Post("/send-message", requireAPI, h.PostSendMessage)
}

func guarded(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(guards)+1)
	handlers = append(handlers, guards...)
	return append(handlers, h)
}
