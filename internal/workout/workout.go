// Package workout provides the activity data model and the metric
// formulas of the fitness tracker.
package workout

import "errors"

// Kind identifies the activity type of a workout session. Its string
// form is the human-facing label used in report lines.
type Kind string

const (
	KindRunning  Kind = "Running"
	KindWalking  Kind = "SportsWalking"
	KindSwimming Kind = "Swimming"
)

// Known reports whether k is one of the supported activity kinds.
func (k Kind) Known() bool {
	switch k {
	case KindRunning, KindWalking, KindSwimming:
		return true
	}
	return false
}

var (
	// ErrNonPositiveDuration is returned by Compute for records whose
	// duration is zero or negative. Mean speed and calories divide by
	// the duration, so such records have no defined metrics.
	ErrNonPositiveDuration = errors.New("duration must be positive")

	// ErrNonPositiveHeight is returned by Compute for walking records
	// whose height is zero or negative, the other divisor in the
	// calorie formulas.
	ErrNonPositiveHeight = errors.New("height must be positive")

	// ErrUnknownKind is returned by Compute for records whose Kind is
	// not a supported activity.
	ErrUnknownKind = errors.New("unknown activity kind")
)

// Record is one raw observation of a single workout session. A record is
// consumed exactly once to produce a Report.
//
// Height is meaningful for walking only; PoolLength and PoolCount for
// swimming only. Weight, Height and PoolLength must be positive for the
// calorie formulas to make sense; the packet layer enforces that when
// records come from sensor data.
type Record struct {
	Kind       Kind
	Action     int     // steps taken, or strokes for swimming
	Duration   float64 // hours
	Weight     float64 // kg
	Height     float64 // cm, walking
	PoolLength float64 // m, swimming
	PoolCount  int     // times the pool was crossed, swimming
}

// Report is the computed, immutable summary of one Record.
type Report struct {
	Kind      Kind
	Duration  float64 // hours
	Distance  float64 // km
	MeanSpeed float64 // km/h
	Calories  float64 // kcal
}
