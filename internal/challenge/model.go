package challenge

import "time"

const (
	// DefaultReward applies when a challenge is created without a usable reward.
	DefaultReward = 100
	// MaxReward bounds the points a challenge can award.
	MaxReward = 1_000_000
	// DefaultDifficulty applies when a challenge is created without a difficulty.
	DefaultDifficulty = "Medium"
)

// Challenge is a distance target users can join.
type Challenge struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Cause          string    `json:"cause,omitempty"`
	TargetDistance float64   `json:"distance"`
	Difficulty     string    `json:"difficulty"`
	Reward         int       `json:"reward"`
	StepTarget     int64     `json:"stepsTarget"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateInput captures the fields an administrator supplies.
type CreateInput struct {
	Name        string
	Description string
	Cause       string
	// Distance must be a positive number; NaN marks a non-numeric value.
	Distance   float64
	Difficulty string
	Reward     float64
	CreatedBy  string
}
