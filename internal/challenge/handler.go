package challenge

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/web"
)

// Handler exposes catalog endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	AdminPassword string     `json:"adminPassword"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Cause         string     `json:"cause"`
	Distance      web.Number `json:"distance"`
	Difficulty    string     `json:"difficulty"`
	Reward        web.Number `json:"reward"`
	CreatedBy     string     `json:"createdBy"`
}

type deleteRequest struct {
	AdminPassword string     `json:"adminPassword"`
	ChallengeID   web.Number `json:"challengeId"`
}

// List returns the whole catalog.
func (h *Handler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", items)
}

// Get returns one challenge by path id.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperr.Validation("invalid challenge id")
	}
	item, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", item)
}

// Create adds a challenge.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	created, err := h.service.Create(c.UserContext(), web.AdminSecret(c, req.AdminPassword), CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Cause:       req.Cause,
		Distance:    req.Distance.Float(),
		Difficulty:  req.Difficulty,
		Reward:      req.Reward.Float(),
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusCreated, "Challenge created", created)
}

// Delete removes a challenge.
func (h *Handler) Delete(c *fiber.Ctx) error {
	var req deleteRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	removed, err := h.service.Delete(c.UserContext(), web.AdminSecret(c, req.AdminPassword), req.ChallengeID.Int64())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "Challenge deleted", removed)
}
