package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/services"
)

// llmTimeout bounds the single LLM attempt. There is no retry.
const llmTimeout = 30 * time.Second

const workoutSystemPrompt = `You are an expert fitness coach. Create personalized workout plans based on user requirements.
Return ONLY a JSON object with this exact structure:
{
    "name": "Workout Plan Name",
    "description": "Brief description",
    "duration": 45,
    "exercises": [
        {"name": "Exercise name", "sets": 3, "reps": "12-15", "rest": "60s"}
    ]
}`

const coachSystemPrompt = `You are an expert AI fitness coach. Provide helpful, motivating, and accurate fitness and nutrition advice.
Be friendly, supportive, and encouraging. Keep responses concise but informative.`

type GenerateWorkoutRequest struct {
	UserID string `json:"userId"`
	Prompt string `json:"prompt"`
}

type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// GenerateWorkout asks the LLM for a workout plan, stores it, and logs a
// not-yet-completed workout for today. The plan insert and the log insert are
// two independent writes; a crash between them leaves the plan without its
// log row.
func (a *API) GenerateWorkout(w http.ResponseWriter, r *http.Request) {
	var req GenerateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "userId and prompt are required")
		return
	}
	if a.llm == nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate workout: AI provider is not configured")
		return
	}

	llmCtx, llmCancel := context.WithTimeout(r.Context(), llmTimeout)
	defer llmCancel()

	userText := fmt.Sprintf("Create a workout plan based on: %s. Return ONLY valid JSON, no markdown or extra text.", req.Prompt)
	reply, err := a.llm.Send(llmCtx, workoutSystemPrompt, userText)
	if err != nil {
		log.Printf("Error generating workout: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate workout: "+err.Error())
		return
	}

	generated, err := services.ParseWorkoutReply(reply)
	if err != nil {
		log.Printf("Error generating workout: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate workout: "+err.Error())
		return
	}

	now := time.Now()
	plan := models.WorkoutPlan{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Name:        generated.Name,
		Description: generated.Description,
		Duration:    generated.Duration,
		Exercises:   generated.Exercises,
		CreatedAt:   now.UTC(),
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	if _, err := a.db.Collection("workout_plans").InsertOne(ctx, plan); err != nil {
		log.Printf("Error generating workout: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate workout: "+err.Error())
		return
	}

	logRow := models.WorkoutLog{
		UserID:    req.UserID,
		WorkoutID: plan.ID,
		Date:      now.Format(services.DateLayout),
		Completed: false,
	}
	if _, err := a.db.Collection("workout_logs").InsertOne(ctx, logRow); err != nil {
		log.Printf("Error generating workout: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate workout: "+err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"workout": plan,
	})
}

// GetChatHistory returns the user's transcript window.
func (a *API) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	ctx, cancel := storeContext(r)
	defer cancel()

	messages, err := a.chats.History(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// Chat persists the user's message, forwards it to the coaching model, and
// persists and returns the reply. The user message stays stored even when
// the provider call fails; there is no compensating rollback.
func (a *API) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "userId and message are required")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Text:      req.Message,
		IsUser:    true,
		Timestamp: time.Now().UTC(),
	}
	if err := a.chats.Save(ctx, userMsg); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get AI response: "+err.Error())
		return
	}

	if a.llm == nil {
		writeError(w, http.StatusInternalServerError, "Failed to get AI response: AI provider is not configured")
		return
	}

	llmCtx, llmCancel := context.WithTimeout(r.Context(), llmTimeout)
	defer llmCancel()

	reply, err := a.llm.Send(llmCtx, coachSystemPrompt, req.Message)
	if err != nil {
		log.Printf("Error in AI chat: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get AI response: "+err.Error())
		return
	}

	aiMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Text:      reply,
		IsUser:    false,
		Timestamp: time.Now().UTC(),
	}
	// Fresh store budget: the provider call may have outlived the context
	// used for the user-message save.
	saveCtx, saveCancel := storeContext(r)
	defer saveCancel()
	if err := a.chats.Save(saveCtx, aiMsg); err != nil {
		log.Printf("Error in AI chat: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get AI response: "+err.Error())
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"response": reply,
	})
}
