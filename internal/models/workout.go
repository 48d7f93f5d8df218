package models

import "time"

// PlanExercise is one exercise inside a workout plan. Reps and rest are
// free-form strings ("12-15", "30-60s") because plans come from the AI as
// well as from users.
type PlanExercise struct {
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Reps string `bson:"reps" json:"reps"`
	Rest string `bson:"rest,omitempty" json:"rest,omitempty"`
}

// WorkoutPlan is stored in the workout_plans collection.
type WorkoutPlan struct {
	ID          string         `bson:"id" json:"id"`
	UserID      string         `bson:"userId" json:"userId"`
	Name        string         `bson:"name" json:"name"`
	Description string         `bson:"description" json:"description"`
	Duration    int            `bson:"duration" json:"duration"` // minutes
	Exercises   []PlanExercise `bson:"exercises" json:"exercises"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// WorkoutLog is stored in the workout_logs collection, one row per workout
// day. Dates are "YYYY-MM-DD" strings so range filters and the streak walk
// can compare them lexically.
type WorkoutLog struct {
	UserID    string `bson:"userId" json:"userId"`
	WorkoutID string `bson:"workoutId" json:"workoutId"`
	Date      string `bson:"date" json:"date"`
	Completed bool   `bson:"completed" json:"completed"`
}

// CatalogueExercise is one entry of the fixed reference library returned by
// the workouts listing. Never persisted.
type CatalogueExercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Sets     int    `json:"sets"`
	Reps     string `json:"reps"`
}
