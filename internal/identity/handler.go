package identity

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/web"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type signupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	AdminPassword string `json:"adminPassword"`
}

// Signup handles account creation.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	user, err := h.service.Register(c.UserContext(), Registration{Email: req.Email, Name: req.Name, Password: req.Password})
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusCreated, "Account created successfully", user.Profile())
}

// Login verifies credentials and reports whether the caller holds admin rights.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	session, err := h.service.Authenticate(c.UserContext(), Credentials{
		Email:       req.Email,
		Password:    req.Password,
		AdminSecret: req.AdminPassword,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    session.User.Profile(),
		"isAdmin": session.IsAdmin,
	})
}

// Profile returns the public profile for the email in the path.
func (h *Handler) Profile(c *fiber.Ctx) error {
	user, err := h.service.Get(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", user.Profile())
}
