package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitgenius/backend/internal/models"
)

// ExerciseCatalogue is the fixed reference library returned to every user by
// the workouts listing. Process-wide constant data, never persisted.
var ExerciseCatalogue = []models.CatalogueExercise{
	{ID: "1", Name: "Push-ups", Category: "Strength", Sets: 3, Reps: "12-15"},
	{ID: "2", Name: "Squats", Category: "Strength", Sets: 4, Reps: "10-12"},
	{ID: "3", Name: "Plank", Category: "Strength", Sets: 3, Reps: "30-60s"},
	{ID: "4", Name: "Running", Category: "Cardio", Sets: 1, Reps: "30 min"},
	{ID: "5", Name: "Burpees", Category: "HIIT", Sets: 4, Reps: "15"},
	{ID: "6", Name: "Lunges", Category: "Strength", Sets: 3, Reps: "12 each leg"},
	{ID: "7", Name: "Mountain Climbers", Category: "HIIT", Sets: 3, Reps: "20"},
	{ID: "8", Name: "Yoga Flow", Category: "Flexibility", Sets: 1, Reps: "20 min"},
}

// GetWorkouts returns the user's stored plans plus the fixed catalogue.
func (a *API) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	ctx, cancel := storeContext(r)
	defer cancel()

	opts := options.Find().SetLimit(100)
	cur, err := a.db.Collection("workout_plans").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}
	defer cur.Close(ctx)

	plans := make([]models.WorkoutPlan, 0)
	if err := cur.All(ctx, &plans); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"workoutPlans": plans,
		"exercises":    ExerciseCatalogue,
	})
}
