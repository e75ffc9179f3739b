package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/challenge"
	"github.com/Roosterfan/trailhub/internal/enrollment"
)

// RegisterChallengeRoutes wires the catalog and the participation endpoints.
func RegisterChallengeRoutes(r fiber.Router, h *challenge.Handler, enrollments *enrollment.Handler) {
	r.Get("/challenges", h.List)
	r.Post("/challenges/create", h.Create)
	r.Post("/challenges/delete", h.Delete)
	r.Post("/challenges/join", enrollments.Join)
	r.Post("/challenges/log-distance", enrollments.LogDistance)
	r.Get("/challenges/:id", h.Get)
}
