package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftracker/internal/workout"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		rep  workout.Report
		want string
	}{
		{
			name: "swimming",
			rep: workout.Report{
				Kind:      workout.KindSwimming,
				Duration:  1,
				Distance:  0.9936,
				MeanSpeed: 1,
				Calories:  336,
			},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "running",
			rep: workout.Report{
				Kind:      workout.KindRunning,
				Duration:  1,
				Distance:  9.75,
				MeanSpeed: 9.75,
				Calories:  797.805,
			},
			want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		},
		{
			name: "walking",
			rep: workout.Report{
				Kind:      workout.KindWalking,
				Duration:  1,
				Distance:  5.85,
				MeanSpeed: 5.85,
				Calories:  349.251747525,
			},
			want: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.rep))
		})
	}
}

func TestMessage_ComputedReport(t *testing.T) {
	rep, err := workout.Compute(workout.Record{
		Kind:       workout.KindSwimming,
		Action:     720,
		Duration:   1,
		Weight:     80,
		PoolLength: 25,
		PoolCount:  40,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		Message(rep))
}

func TestWriteText(t *testing.T) {
	reports := []workout.Report{
		{Kind: workout.KindRunning, Duration: 1, Distance: 9.75, MeanSpeed: 9.75, Calories: 797.805},
		{Kind: workout.KindSwimming, Duration: 1, Distance: 0.9936, MeanSpeed: 1, Calories: 336},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reports))

	want := "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.\n" +
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n"
	assert.Equal(t, want, buf.String(), "one line per report, input order")
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteJSON(t *testing.T) {
	reports := []workout.Report{
		{Kind: workout.KindRunning, Duration: 1, Distance: 9.75, MeanSpeed: 9.75, Calories: 797.805},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, reports))

	want := `[
	  {
	    "training_type": "Running",
	    "duration_h": 1,
	    "distance_km": 9.75,
	    "mean_speed_kmh": 9.75,
	    "calories_kcal": 797.805
	  }
	]`
	assert.JSONEq(t, want, buf.String())
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.JSONEq(t, "[]", buf.String(), "an empty report list is still a document")
}
