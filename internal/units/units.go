package units

import "math"

const (
	// StepsPerKm is the fixed conversion ratio between walked distance and steps.
	StepsPerKm = 1250
	// MaxDistance bounds a single progress report or challenge target, in km.
	MaxDistance = 1_000_000
	// MaxSteps is MaxDistance expressed in steps.
	MaxSteps = MaxDistance * StepsPerKm
)

// DistanceToSteps converts kilometres to a whole number of steps. Results
// outside the int64 range saturate; NaN yields 0.
func DistanceToSteps(km float64) int64 {
	steps := math.Round(km * StepsPerKm)
	switch {
	case math.IsNaN(steps):
		return 0
	case steps >= math.MaxInt64:
		return math.MaxInt64
	case steps <= math.MinInt64:
		return math.MinInt64
	}
	return int64(steps)
}

// StepsToDistance converts steps to kilometres rounded to 2 decimal places.
func StepsToDistance(steps int64) float64 {
	return Round2(float64(steps) / StepsPerKm)
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
