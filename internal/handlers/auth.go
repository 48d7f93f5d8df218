package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/pkg/utils"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a user. Email uniqueness is a pre-insert lookup, so two
// racing signups for the same email can both pass; the store has no unique
// index forcing the issue.
func (a *API) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	users := a.db.Collection("users")

	err := users.FindOne(ctx, bson.M{"email": req.Email}).Err()
	if err == nil {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != mongo.ErrNoDocuments {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]interface{}{
		"user": user.Public(),
	})
}

// Login verifies credentials and returns the public user shape. No session
// or token is issued: every subsequent call re-supplies userId from the
// client and the server trusts it.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	var user models.User
	err := a.db.Collection("users").FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error")
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]interface{}{
		"user": user.Public(),
	})
}
