package verification

import "time"

// Status is the lifecycle state of a Request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a proof-backed progress claim awaiting an administrator decision.
type Request struct {
	ID          int64      `json:"id"`
	Email       string     `json:"userEmail"`
	ChallengeID int64      `json:"challengeId"`
	Distance    float64    `json:"distance"`
	Steps       int64      `json:"steps"`
	ProofRef    string     `json:"proofImage"`
	Status      Status     `json:"status"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

// Resolved reports whether the request reached a terminal state.
func (r Request) Resolved() bool {
	return r.Status != StatusPending
}
