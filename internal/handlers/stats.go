package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fitgenius/backend/internal/services"
)

// Fixed per-workout constants. The source system never measured real burn or
// duration; every workout counts as 350 kcal and 45 minutes.
const (
	caloriesPerWorkout = 350
	minutesPerWorkout  = 45
)

// GetUserStats returns the trailing-7-day workout count, the derived
// calorie/minute figures, and the current streak.
func (a *API) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ctx, cancel := storeContext(r)
	defer cancel()

	// Inclusive window by lexical comparison on YYYY-MM-DD strings.
	weekAgo := time.Now().AddDate(0, 0, -7).Format(services.DateLayout)
	count, err := a.db.Collection("workout_logs").CountDocuments(ctx, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": weekAgo},
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	streak, err := services.CurrentStreak(ctx, a.db, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"stats": map[string]interface{}{
			"workoutsThisWeek": count,
			"caloriesBurned":   count * caloriesPerWorkout,
			"activeMinutes":    count * minutesPerWorkout,
			"currentStreak":    streak,
		},
	})
}
