package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/discussion"
	"github.com/Roosterfan/trailhub/internal/leaderboard"
	"github.com/Roosterfan/trailhub/internal/verification"
)

// RegisterVerificationRoutes wires the admin review endpoints.
func RegisterVerificationRoutes(r fiber.Router, h *verification.Handler) {
	r.Get("/verification-queue", h.Queue)
	r.Post("/verification/approve", h.Approve)
	r.Post("/verification/reject", h.Reject)
}

// RegisterLeaderboardRoutes wires ranking and aggregate endpoints.
func RegisterLeaderboardRoutes(r fiber.Router, h *leaderboard.Handler) {
	r.Get("/leaderboard", h.Leaderboard)
	r.Get("/stats", h.Stats)
}

// RegisterDiscussionRoutes wires the discussion board.
func RegisterDiscussionRoutes(r fiber.Router, h *discussion.Handler) {
	r.Get("/discussions", h.List)
	r.Post("/discussions", h.Create)
	r.Post("/discussions/delete", h.Delete)
	r.Post("/discussions/delete-image", h.DeleteImage)
}
