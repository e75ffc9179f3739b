package enrollment

import (
	"time"

	"github.com/Roosterfan/trailhub/internal/challenge"
	"github.com/Roosterfan/trailhub/internal/verification"
)

// Enrollment is a user's participation record in one challenge. Distance and
// Steps hold the latest full progress report, not a running sum.
type Enrollment struct {
	Email            string     `json:"userEmail"`
	ChallengeID      int64      `json:"challengeId"`
	Distance         float64    `json:"distanceCompleted"`
	Steps            int64      `json:"stepsCompleted"`
	VerifiedDistance float64    `json:"verifiedDistance"`
	JoinedAt         time.Time  `json:"joinedAt"`
	Verified         bool       `json:"verified"`
	ProofRef         *string    `json:"proofImage"`
	LastSubmittedAt  *time.Time `json:"lastSubmission"`
}

// ProgressInput is one progress report. Non-positive values count as absent.
type ProgressInput struct {
	Email       string
	ChallengeID int64
	Distance    float64
	Steps       int64
	ProofRef    string
}

// ProgressResult describes what a progress report changed.
type ProgressResult struct {
	Enrollment Enrollment
	Distance   float64
	Steps      int64
	// Request is set when the report carried proof and was queued for review.
	Request *verification.Request
}

// Summary joins an enrollment with its challenge. Challenge is nil once the
// challenge has been deleted from the catalog.
type Summary struct {
	Enrollment
	Challenge       *challenge.Challenge `json:"challenge"`
	PercentComplete float64              `json:"percentComplete"`
}
