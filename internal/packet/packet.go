// Package packet decodes raw sensor packets into workout records.
package packet

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ftracker/internal/workout"
)

var (
	// ErrUnknownWorkoutType is returned for type codes outside the
	// dispatch table.
	ErrUnknownWorkoutType = errors.New("unknown workout type")

	// ErrInvalidPacketData is returned when the data values do not form
	// a valid record for the resolved kind: wrong arity, non-finite
	// numbers, fractional or oversized counts, or out-of-range
	// measurements.
	ErrInvalidPacketData = errors.New("invalid packet data")
)

// Packet is one (type code, values) pair as received from a sensor feed.
type Packet struct {
	WorkoutType string
	Data        []float64
}

// layouts maps a workout type code to its kind and the positional layout
// of its data values:
//
//	RUN: action, duration_h, weight_kg
//	WLK: action, duration_h, weight_kg, height_cm
//	SWM: action, duration_h, weight_kg, pool_length_m, pool_lengths_count
var layouts = map[string]struct {
	kind  workout.Kind
	arity int
}{
	"RUN": {workout.KindRunning, 3},
	"WLK": {workout.KindWalking, 4},
	"SWM": {workout.KindSwimming, 5},
}

// AcceptedTypes returns the workout type codes the dispatcher
// understands, in stable order.
func AcceptedTypes() []string {
	return []string{"RUN", "SWM", "WLK"}
}

// Record validates the packet and constructs the workout record for its
// type code. Unknown codes fail with ErrUnknownWorkoutType; wrong arity
// or unusable values fail with ErrInvalidPacketData, and no partial
// record is ever returned.
//
// The duration value is not range-checked here; workout.Compute rejects
// a non-positive duration as a domain error.
func (p Packet) Record() (workout.Record, error) {
	layout, ok := layouts[p.WorkoutType]
	if !ok {
		return workout.Record{}, fmt.Errorf("%w %q (accepted: %s)",
			ErrUnknownWorkoutType, p.WorkoutType, strings.Join(AcceptedTypes(), ", "))
	}
	if len(p.Data) != layout.arity {
		return workout.Record{}, fmt.Errorf("%w: %s expects %d values, got %d",
			ErrInvalidPacketData, p.WorkoutType, layout.arity, len(p.Data))
	}
	for i, v := range p.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return workout.Record{}, fmt.Errorf("%w: value %d is not a finite number", ErrInvalidPacketData, i)
		}
	}

	rec := workout.Record{
		Kind:     layout.kind,
		Duration: p.Data[1],
	}

	var err error
	if rec.Action, err = countValue("action count", p.Data[0]); err != nil {
		return workout.Record{}, err
	}
	if rec.Weight, err = positiveValue("weight", p.Data[2]); err != nil {
		return workout.Record{}, err
	}

	switch layout.kind {
	case workout.KindWalking:
		if rec.Height, err = positiveValue("height", p.Data[3]); err != nil {
			return workout.Record{}, err
		}
	case workout.KindSwimming:
		if rec.PoolLength, err = positiveValue("pool length", p.Data[3]); err != nil {
			return workout.Record{}, err
		}
		if rec.PoolCount, err = countValue("pool lengths count", p.Data[4]); err != nil {
			return workout.Record{}, err
		}
	}

	return rec, nil
}

// maxCount is the largest count a float64 represents exactly; above it
// the conversion to int no longer round-trips.
const maxCount = 1 << 53

// countValue converts a data value into a non-negative whole count.
func countValue(name string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be a whole number, got %v", ErrInvalidPacketData, name, v)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidPacketData, name, v)
	}
	if v > maxCount {
		return 0, fmt.Errorf("%w: %s must be at most %d, got %v", ErrInvalidPacketData, name, int64(maxCount), v)
	}
	return int(v), nil
}

// positiveValue validates a measurement that must be strictly positive.
func positiveValue(name string, v float64) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidPacketData, name, v)
	}
	return v, nil
}
