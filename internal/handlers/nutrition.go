package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitgenius/backend/internal/models"
)

type AddMealRequest struct {
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
}

// sumConsumed totals the macros over a day's meals. Zero-valued when the
// slice is empty; summation is order-independent.
func sumConsumed(meals []models.Meal) models.Consumed {
	var c models.Consumed
	for _, m := range meals {
		c.Calories += m.Calories
		c.Protein += m.Protein
		c.Carbs += m.Carbs
		c.Fats += m.Fats
	}
	return c
}

// GetNutrition returns the meals for an exact (userId, date) pair plus the
// summed macros for that day.
func (a *API) GetNutrition(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	date := r.URL.Query().Get("date")

	ctx, cancel := storeContext(r)
	defer cancel()

	opts := options.Find().SetLimit(100)
	cur, err := a.db.Collection("meals").Find(ctx, bson.M{"userId": userID, "date": date}, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch nutrition")
		return
	}
	defer cur.Close(ctx)

	meals := make([]models.Meal, 0)
	if err := cur.All(ctx, &meals); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch nutrition")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"meals":    meals,
		"consumed": sumConsumed(meals),
	})
}

// AddMeal stores one meal. Macros are taken as supplied; the server does not
// validate them.
func (a *API) AddMeal(w http.ResponseWriter, r *http.Request) {
	var req AddMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Name == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "userId, name, and date are required")
		return
	}

	now := time.Now()
	if req.Time == "" {
		req.Time = now.Format("15:04")
	}

	meal := models.Meal{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Name:      req.Name,
		Calories:  req.Calories,
		Protein:   req.Protein,
		Carbs:     req.Carbs,
		Fats:      req.Fats,
		Date:      req.Date,
		Time:      req.Time,
		CreatedAt: now.UTC(),
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	if _, err := a.db.Collection("meals").InsertOne(ctx, meal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add meal")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"meal": meal,
	})
}
