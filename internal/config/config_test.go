package config_test

import (
	"testing"

	"github.com/fitgenius/backend/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MONGODB_URI", "MONGO_URL", "DB_NAME", "REDIS_URI", "GEMINI_API_KEY", "GEMINI_MODEL", "PORT", "ALLOWED_ORIGINS", "FRONTEND_URL", "FRONTEND_URL_2", "ENV"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.MongoURI != "mongodb://localhost:27017/fitgenius" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.DBName != "fitgenius" {
		t.Errorf("DBName = %q", cfg.DBName)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("GeminiModel = %q", cfg.GeminiModel)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.IsProduction() {
		t.Error("default env reported as production")
	}
}

func TestLoadMongoURLFallback(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "mongodb://fallback:27017/db")

	cfg := config.Load()
	if cfg.MongoURI != "mongodb://fallback:27017/db" {
		t.Errorf("MongoURI = %q, want MONGO_URL fallback", cfg.MongoURI)
	}

	t.Setenv("MONGODB_URI", "mongodb://primary:27017/db")
	cfg = config.Load()
	if cfg.MongoURI != "mongodb://primary:27017/db" {
		t.Errorf("MongoURI = %q, want MONGODB_URI to win", cfg.MongoURI)
	}
}

func TestLoadAllowedOriginsParsing(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://app.example.com , http://localhost:3000 ,")

	cfg := config.Load()
	want := []string{"https://app.example.com", "http://localhost:3000"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "Production")

	if !config.Load().IsProduction() {
		t.Error("ENV=Production not detected as production")
	}
}
