package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/enrollment"
	"github.com/Roosterfan/trailhub/internal/identity"
)

// RegisterIdentityRoutes wires account and per-user endpoints.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler, enrollments *enrollment.Handler, loginLimiter fiber.Handler) {
	r.Post("/signup", h.Signup)
	r.Post("/login", loginLimiter, h.Login)
	r.Get("/user/:email", h.Profile)
	r.Get("/user/:email/challenges", enrollments.UserChallenges)
}
