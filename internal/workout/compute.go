package workout

import "fmt"

// Unit conversion factors and per-activity calorie coefficients.
const (
	lenStep     = 0.65 // meters covered by one step
	swimLenStep = 1.38 // meters covered by one stroke

	mInKm     = 1000
	minInH    = 60
	kmhInMsec = 0.278
	cmInM     = 100

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// stepLength returns the meters covered by one action of the given kind.
func stepLength(k Kind) float64 {
	if k == KindSwimming {
		return swimLenStep
	}
	return lenStep
}

// Compute derives distance, mean speed and calories from one record.
// Pure function, no side effects.
//
// Swimming takes its mean speed from pool length and crossing count
// rather than from the stroke distance. Compute fails with
// ErrNonPositiveDuration unless the record's duration is positive, with
// ErrNonPositiveHeight unless a walking record's height is, and with
// ErrUnknownKind when the kind is not a supported activity. A NaN
// duration or height fails the same checks, so metrics are never
// silently NaN or Inf.
func Compute(r Record) (Report, error) {
	if !r.Kind.Known() {
		return Report{}, fmt.Errorf("%w %q", ErrUnknownKind, string(r.Kind))
	}
	// Negated comparisons so NaN fails validation too.
	if !(r.Duration > 0) {
		return Report{}, fmt.Errorf("%w, got %v hours", ErrNonPositiveDuration, r.Duration)
	}
	if r.Kind == KindWalking && !(r.Height > 0) {
		return Report{}, fmt.Errorf("%w, got %v cm", ErrNonPositiveHeight, r.Height)
	}

	distance := float64(r.Action) * stepLength(r.Kind) / mInKm

	var speed float64
	if r.Kind == KindSwimming {
		speed = r.PoolLength * float64(r.PoolCount) / mInKm / r.Duration
	} else {
		speed = distance / r.Duration
	}

	var calories float64
	switch r.Kind {
	case KindRunning:
		calories = (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) *
			r.Weight / mInKm * r.Duration * minInH
	case KindWalking:
		speedMsec := speed * kmhInMsec
		calories = (walkingCaloriesWeightMultiplier*r.Weight +
			speedMsec*speedMsec/(r.Height/cmInM)*walkingSpeedHeightMultiplier*r.Weight) *
			r.Duration * minInH
	case KindSwimming:
		calories = (speed + swimmingCaloriesMeanSpeedShift) *
			swimmingCaloriesWeightMultiplier * r.Weight * r.Duration
	}

	return Report{
		Kind:      r.Kind,
		Duration:  r.Duration,
		Distance:  distance,
		MeanSpeed: speed,
		Calories:  calories,
	}, nil
}
