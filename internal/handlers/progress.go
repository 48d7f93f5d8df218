package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/services"
)

type AddWeightRequest struct {
	UserID string  `json:"userId"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// GetProgress returns weight entries (date ascending), the user's single
// measurements document if one exists (null otherwise), and aggregate stats.
func (a *API) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	ctx, cancel := storeContext(r)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(100)
	cur, err := a.db.Collection("weight_entries").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}
	defer cur.Close(ctx)

	weightData := make([]models.WeightEntry, 0)
	if err := cur.All(ctx, &weightData); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	// One free-form measurements document per user, last write wins. Absent
	// documents serialize as null, not an error.
	var measurements bson.M
	err = a.db.Collection("measurements").FindOne(ctx, bson.M{"userId": userID}).Decode(&measurements)
	if err != nil && err != mongo.ErrNoDocuments {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	totalWorkouts, err := a.db.Collection("workout_logs").CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	streak, err := services.CurrentStreak(ctx, a.db, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"weightData":   weightData,
		"measurements": measurements,
		"stats": models.ProgressStats{
			TotalWorkouts:       totalWorkouts,
			TotalCaloriesBurned: totalWorkouts * caloriesPerWorkout,
			AvgWorkoutDuration:  minutesPerWorkout,
			CurrentStreak:       streak,
		},
	})
}

// AddWeight stores one weight entry. Weight is unitless by design.
func (a *API) AddWeight(w http.ResponseWriter, r *http.Request) {
	var req AddWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "userId and date are required")
		return
	}

	entry := models.WeightEntry{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Weight:    req.Weight,
		Date:      req.Date,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	if _, err := a.db.Collection("weight_entries").InsertOne(ctx, entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add weight entry")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"entry": entry,
	})
}
