package identity

import (
	"math"
	"time"

	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/units"
)

// PointsPerKm is the reward credited for every kilometre logged or verified.
const PointsPerKm = 5

// User is a registered participant keyed by email.
type User struct {
	Email            string
	Name             string
	SecretHash       []byte
	CreatedAt        time.Time
	TotalDistance    float64
	TotalSteps       int64
	VerifiedDistance float64
	Points           float64
	Badges           int
}

// Profile is the public projection of a User.
type Profile struct {
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	CreatedAt        time.Time `json:"createdAt"`
	TotalDistance    float64   `json:"totalDistance"`
	TotalSteps       int64     `json:"totalSteps"`
	VerifiedDistance float64   `json:"verifiedDistance"`
	Points           float64   `json:"points"`
	Badges           int       `json:"badges"`
}

// Profile strips the credential from u. Distances and points are kept
// unrounded on the user and rounded to 2 decimals here.
func (u User) Profile() Profile {
	return Profile{
		Email:            u.Email,
		Name:             u.Name,
		CreatedAt:        u.CreatedAt,
		TotalDistance:    units.Round2(u.TotalDistance),
		TotalSteps:       u.TotalSteps,
		VerifiedDistance: units.Round2(u.VerifiedDistance),
		Points:           units.Round2(u.Points),
		Badges:           u.Badges,
	}
}

// CreditLogged adds one progress report to the running totals and points.
// u is left untouched when any total would overflow.
func (u *User) CreditLogged(distance float64, steps int64) error {
	if steps < 0 || steps > math.MaxInt64-u.TotalSteps {
		return apperr.Validation("step total out of range")
	}
	total := u.TotalDistance + distance
	points := u.Points + distance*PointsPerKm
	if !finite(total) || !finite(points) {
		return apperr.Validation("distance total out of range")
	}
	u.TotalDistance = total
	u.TotalSteps += steps
	u.Points = points
	return nil
}

// CreditVerified adds an approved distance, its second points award and a badge.
// u is left untouched when any total would overflow.
func (u *User) CreditVerified(distance float64) error {
	verified := u.VerifiedDistance + distance
	points := u.Points + distance*PointsPerKm
	if !finite(verified) || !finite(points) {
		return apperr.Validation("verified distance out of range")
	}
	u.VerifiedDistance = verified
	u.Points = points
	u.Badges++
	return nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Registration is the sign-up request.
type Registration struct {
	Email    string
	Name     string
	Password string
}

// Credentials is the login request. AdminSecret is optional.
type Credentials struct {
	Email       string
	Password    string
	AdminSecret string
}

// Session is the result of a successful login. IsAdmin only holds for the
// response it was issued with.
type Session struct {
	User    User
	IsAdmin bool
}
