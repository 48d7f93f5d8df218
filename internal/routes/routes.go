package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/fitgenius/backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, api *handlers.API) {
	// Auth routes
	r.Post("/api/auth/signup", api.Signup)
	r.Post("/api/auth/login", api.Login)

	// Stats routes
	r.Get("/api/users/{userId}/stats", api.GetUserStats)

	// Workout routes
	r.Get("/api/workouts", api.GetWorkouts)
	r.Post("/api/ai/generate-workout", api.GenerateWorkout)

	// Nutrition routes
	r.Get("/api/nutrition", api.GetNutrition)
	r.Post("/api/nutrition/add-meal", api.AddMeal)

	// Progress routes
	r.Get("/api/progress", api.GetProgress)
	r.Post("/api/progress/add-weight", api.AddWeight)

	// AI chat routes
	r.Get("/api/ai/chat-history", api.GetChatHistory)
	r.Post("/api/ai/chat", api.Chat)

	// Service routes
	r.Get("/api/", api.Root)
	r.Get("/api/health", api.Health)
}
