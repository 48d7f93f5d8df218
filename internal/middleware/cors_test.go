package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitgenius/backend/internal/middleware"
)

func wrapped(origins []string) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	return middleware.CORS(origins)(next)
}

func TestCORSPreflightAlwaysOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodOptions, "/api/workouts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	wrapped([]string{"http://localhost:3000"}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestCORSUnlistedOriginGetsNoAllowHeader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	wrapped([]string{"http://localhost:3000"}).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want empty for unlisted origin", got)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("request not passed through, status = %d", rec.Code)
	}
}

func TestCORSOriginMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	req.Header.Set("Origin", "HTTP://LOCALHOST:3000")
	rec := httptest.NewRecorder()

	wrapped([]string{"http://localhost:3000"}).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "HTTP://LOCALHOST:3000" {
		t.Errorf("Allow-Origin = %q, want echoed origin", got)
	}
}
