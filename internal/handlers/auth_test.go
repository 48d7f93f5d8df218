package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/fitgenius/backend/internal/handlers"
	"github.com/fitgenius/backend/pkg/utils"
)

type authResponse struct {
	Success bool                   `json:"success"`
	User    map[string]interface{} `json:"user"`
}

func postAuth(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func userDoc(id, name, email, passwordHash string) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "password", Value: passwordHash},
	}
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("second signup with the same email", func(mt *mtest.T) {
		// The pre-insert lookup finds the first user, so the second signup
		// must stop with 409 before hashing or inserting anything.
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "fitgenius.users", mtest.FirstBatch,
			userDoc("user-1", "First", "dup@example.com", "hash")))

		api := handlers.New(mt.DB, nil, nil)
		rec := postAuth(mt.T, api.Signup, "/api/auth/signup",
			`{"name":"Second","email":"dup@example.com","password":"pw"}`)

		if rec.Code != http.StatusConflict {
			mt.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusConflict, rec.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			mt.Fatalf("decode body: %v", err)
		}
		if body["detail"] == "" {
			mt.Errorf(`body %s missing "detail"`, rec.Body.String())
		}
	})
}

func TestSignupAssignsIDAndHidesPassword(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("fresh email", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "fitgenius.users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		api := handlers.New(mt.DB, nil, nil)
		rec := postAuth(mt.T, api.Signup, "/api/auth/signup",
			`{"name":"Ada","email":"ada@example.com","password":"pw123"}`)

		if rec.Code != http.StatusCreated {
			mt.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
		}
		var body authResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			mt.Fatalf("decode body: %v", err)
		}
		if !body.Success {
			mt.Errorf("success = false: %s", rec.Body.String())
		}
		if id, _ := body.User["id"].(string); id == "" {
			mt.Errorf("user payload %v missing generated id", body.User)
		}
		if body.User["email"] != "ada@example.com" || body.User["name"] != "Ada" {
			mt.Errorf("user payload %v does not echo name and email", body.User)
		}
		if _, leaked := body.User["password"]; leaked {
			mt.Errorf("password leaked in signup response: %v", body.User)
		}
	})
}

func TestLoginCredentials(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	hash, err := utils.HashPassword("pw123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := userDoc("user-42", "Ada", "ada@example.com", hash)

	mt.Run("correct password returns the stored id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "fitgenius.users", mtest.FirstBatch, stored))

		api := handlers.New(mt.DB, nil, nil)
		rec := postAuth(mt.T, api.Login, "/api/auth/login",
			`{"email":"ada@example.com","password":"pw123"}`)

		if rec.Code != http.StatusOK {
			mt.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		var body authResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			mt.Fatalf("decode body: %v", err)
		}
		if body.User["id"] != "user-42" {
			mt.Errorf("login id = %v, want the id assigned at signup", body.User["id"])
		}
		if _, leaked := body.User["password"]; leaked {
			mt.Errorf("password leaked in login response: %v", body.User)
		}
	})

	mt.Run("wrong password is rejected", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "fitgenius.users", mtest.FirstBatch, stored))

		api := handlers.New(mt.DB, nil, nil)
		rec := postAuth(mt.T, api.Login, "/api/auth/login",
			`{"email":"ada@example.com","password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			mt.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body.String())
		}
	})

	mt.Run("unknown email is rejected", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "fitgenius.users", mtest.FirstBatch))

		api := handlers.New(mt.DB, nil, nil)
		rec := postAuth(mt.T, api.Login, "/api/auth/login",
			`{"email":"ghost@example.com","password":"pw123"}`)

		if rec.Code != http.StatusUnauthorized {
			mt.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body.String())
		}
	})
}
