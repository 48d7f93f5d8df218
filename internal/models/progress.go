package models

import "time"

// WeightEntry is stored in the weight_entries collection. Weight is unitless;
// the client decides kg vs lb.
type WeightEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Weight    float64   `bson:"weight" json:"weight"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ProgressStats is the aggregate block of the progress payload.
type ProgressStats struct {
	TotalWorkouts       int64 `json:"totalWorkouts"`
	TotalCaloriesBurned int64 `json:"totalCaloriesBurned"`
	AvgWorkoutDuration  int   `json:"avgWorkoutDuration"`
	CurrentStreak       int   `json:"currentStreak"`
}
