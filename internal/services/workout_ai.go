package services

import (
	"encoding/json"
	"strings"

	"github.com/fitgenius/backend/internal/models"
)

// Defaults applied when the model's JSON omits a field.
const (
	DefaultWorkoutName        = "AI Generated Workout"
	DefaultWorkoutDescription = "Custom workout plan"
	DefaultWorkoutDuration    = 45
)

// GeneratedWorkout is the parsed shape of the model's generate-workout reply,
// with defaults already applied.
type GeneratedWorkout struct {
	Name        string
	Description string
	Duration    int
	Exercises   []models.PlanExercise
}

// StripCodeFence removes a wrapping Markdown code fence from a model reply,
// including an optional leading "json" language tag. Replies without a fence
// are returned trimmed and otherwise untouched.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.Split(s, "```")
	if len(parts) < 2 {
		return s
	}
	body := parts[1]
	body = strings.TrimPrefix(body, "json")
	return strings.TrimSpace(body)
}

// ParseWorkoutReply parses the model's reply into workout-plan fields. A
// fenced reply parses identically to the bare JSON. Missing keys fall back to
// defaults; an omitted exercise list becomes an empty (non-nil) slice. Only a
// reply that is not valid JSON at all is an error.
func ParseWorkoutReply(reply string) (GeneratedWorkout, error) {
	var raw struct {
		Name        *string               `json:"name"`
		Description *string               `json:"description"`
		Duration    *int                  `json:"duration"`
		Exercises   []models.PlanExercise `json:"exercises"`
	}
	if err := json.Unmarshal([]byte(StripCodeFence(reply)), &raw); err != nil {
		return GeneratedWorkout{}, err
	}

	out := GeneratedWorkout{
		Name:        DefaultWorkoutName,
		Description: DefaultWorkoutDescription,
		Duration:    DefaultWorkoutDuration,
		Exercises:   []models.PlanExercise{},
	}
	if raw.Name != nil {
		out.Name = *raw.Name
	}
	if raw.Description != nil {
		out.Description = *raw.Description
	}
	if raw.Duration != nil {
		out.Duration = *raw.Duration
	}
	if raw.Exercises != nil {
		out.Exercises = raw.Exercises
	}
	return out, nil
}
