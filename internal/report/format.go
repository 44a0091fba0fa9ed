// Package report renders computed workout summaries.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"ftracker/internal/workout"
)

// Message returns the canonical one-line summary for a report. The line
// is a display contract: Russian field labels and exactly three decimals
// per metric, byte for byte.
func Message(r workout.Report) string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		r.Kind, r.Duration, r.Distance, r.MeanSpeed, r.Calories)
}

// WriteText writes one summary line per report, in order.
func WriteText(w io.Writer, reports []workout.Report) error {
	for _, r := range reports {
		if _, err := fmt.Fprintln(w, Message(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the reports as a single indented JSON array.
func WriteJSON(w io.Writer, reports []workout.Report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, jsonReport{
			TrainingType: string(r.Kind),
			DurationH:    r.Duration,
			DistanceKm:   r.Distance,
			MeanSpeedKmh: r.MeanSpeed,
			CaloriesKcal: r.Calories,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

type jsonReport struct {
	TrainingType string  `json:"training_type"`
	DurationH    float64 `json:"duration_h"`
	DistanceKm   float64 `json:"distance_km"`
	MeanSpeedKmh float64 `json:"mean_speed_kmh"`
	CaloriesKcal float64 `json:"calories_kcal"`
}
