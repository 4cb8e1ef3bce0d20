package handlers_fiber

import (
	"net/http"
	"time"

	"freelance-flow/internal/api"

	"github.com/gofiber/fiber/v2"
)

var credentialFields = []string{"username", "password"}

// GetRoot sends visitors to the dashboard.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Redirect("/dashboard")
}

// GetRegister describes the registration form.
func (h *Handler) GetRegister(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.FormPage{Page: "register", Action: "/register", Fields: credentialFields})
}

// PostRegister creates an account and sends the user to the login page.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body api.CredentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).SendString("invalid body")
	}

	if _, err := h.uc.Register(c.Context(), body.Username, body.Password); err != nil {
		return h.pageError(c, err)
	}
	return c.Redirect("/login")
}

// GetLogin describes the login form.
func (h *Handler) GetLogin(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.FormPage{Page: "login", Action: "/login", Fields: credentialFields})
}

// PostLogin checks credentials, starts a session and sends the user to the dashboard.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.CredentialsRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).SendString("invalid body")
	}

	user, err := h.uc.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		return h.pageError(c, err)
	}

	token, err := h.sessions.Issue(c.Context(), user.ID)
	if err != nil {
		return h.pageError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessions.TTL()),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.log.Infow("user login", "user_id", user.ID)
	return c.Redirect("/dashboard")
}

// GetLogout ends the session and clears the cookie.
func (h *Handler) GetLogout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookie.Name); token != "" {
		if err := h.sessions.Revoke(c.Context(), token); err != nil {
			h.log.Warnw("failed to revoke session", "error", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		Secure:   h.cookie.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login")
}
