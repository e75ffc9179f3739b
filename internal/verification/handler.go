package verification

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/web"
)

// Handler exposes the admin verification endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a verification HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type resolveRequest struct {
	AdminPassword string     `json:"adminPassword"`
	RequestID     web.Number `json:"requestId"`
}

// Queue lists every verification request.
func (h *Handler) Queue(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext(), web.AdminSecret(c, ""))
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", items)
}

// Approve resolves a request as approved.
func (h *Handler) Approve(c *fiber.Ctx) error {
	var req resolveRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	resolved, err := h.service.Approve(c.UserContext(), web.AdminSecret(c, req.AdminPassword), req.RequestID.Int64())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "Verification approved", resolved)
}

// Reject resolves a request as rejected.
func (h *Handler) Reject(c *fiber.Ctx) error {
	var req resolveRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	resolved, err := h.service.Reject(c.UserContext(), web.AdminSecret(c, req.AdminPassword), req.RequestID.Int64())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "Verification rejected", resolved)
}
