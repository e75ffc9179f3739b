package enrollment

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/web"
)

// Handler exposes enrollment endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an enrollment HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type joinRequest struct {
	Email       string     `json:"email"`
	ChallengeID web.Number `json:"challengeId"`
}

type progressRequest struct {
	Email       string     `json:"email"`
	ChallengeID web.Number `json:"challengeId"`
	Distance    web.Number `json:"distance"`
	Steps       web.Number `json:"steps"`
	ProofImage  string     `json:"proofImage"`
}

// Join enrolls the user in a challenge.
func (h *Handler) Join(c *fiber.Ctx) error {
	var req joinRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	e, err := h.service.Join(c.UserContext(), req.Email, req.ChallengeID.Int64())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusCreated, "Joined challenge", e)
}

// LogDistance records a progress report.
func (h *Handler) LogDistance(c *fiber.Ctx) error {
	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return web.BadBody(err)
	}
	res, err := h.service.LogProgress(c.UserContext(), ProgressInput{
		Email:       req.Email,
		ChallengeID: req.ChallengeID.Int64(),
		Distance:    req.Distance.Float(),
		Steps:       req.Steps.Int64(),
		ProofRef:    req.ProofImage,
	})
	if err != nil {
		return err
	}

	message := "Progress logged"
	data := fiber.Map{
		"enrollment": res.Enrollment,
		"distance":   res.Distance,
		"steps":      res.Steps,
	}
	if res.Request != nil {
		message = "Submitted for verification"
		data["verificationRequest"] = res.Request
	}
	return web.OK(c, http.StatusOK, message, data)
}

// UserChallenges lists the enrollments of the user named in the path.
func (h *Handler) UserChallenges(c *fiber.Ctx) error {
	items, err := h.service.ListForUser(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", items)
}
