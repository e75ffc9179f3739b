package discussion

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/web"
)

// Handler exposes discussion endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a discussion HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type postRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Image   string `json:"image"`
}

type deleteRequest struct {
	AdminPassword string     `json:"adminPassword"`
	PostID        web.Number `json:"postId"`
}

// List returns the board, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	posts, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", posts)
}

// Create publishes a post.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	p, err := h.service.Post(c.UserContext(), PostInput{Email: req.Email, Name: req.Name, Message: req.Message, Image: req.Image})
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusCreated, "Post created", p)
}

// Delete removes a post.
func (h *Handler) Delete(c *fiber.Ctx) error {
	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	if err := h.service.Delete(c.UserContext(), web.AdminSecret(c, req.AdminPassword), req.PostID.Int64()); err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "Post deleted", nil)
}

// DeleteImage removes the image attached to a post.
func (h *Handler) DeleteImage(c *fiber.Ctx) error {
	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	p, err := h.service.DeleteImage(c.UserContext(), web.AdminSecret(c, req.AdminPassword), req.PostID.Int64())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "Image deleted", p)
}
