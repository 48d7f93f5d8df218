package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fitgenius/backend/internal/config"
	"github.com/fitgenius/backend/internal/database"
	"github.com/fitgenius/backend/internal/handlers"
	"github.com/fitgenius/backend/internal/middleware"
	"github.com/fitgenius/backend/internal/routes"
	"github.com/fitgenius/backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	client, db, err := database.Connect(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect(client)

	// Connect to Redis (optional; backs the chat history cache)
	rdb := connectRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	// Ensure MongoDB indexes for chat history and workout logs
	if err := services.EnsureIndexes(context.Background(), db); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB indexes: %v", err)
	} else {
		log.Println("✅ MongoDB indexes ensured")
	}

	// Initialize the LLM client. AI routes report a provider error when the
	// key is missing; everything else keeps working.
	var llm *services.LLMClient
	if cfg.GeminiAPIKey != "" {
		llm, err = services.NewLLMClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("Warning: Failed to initialize LLM client: %v", err)
			log.Println("AI workout generation and coaching chat will not be available")
		} else {
			defer llm.Close()
			log.Println("✅ LLM client initialized")
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY not set. AI workout generation and coaching chat will not be available")
	}

	chats := services.NewChatStore(db, rdb)
	var sender handlers.LLMSender
	if llm != nil {
		sender = llm
	}
	api := handlers.New(db, chats, sender)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, api)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/signup")
	log.Println("  POST /api/auth/login")
	log.Println("  GET  /api/users/{userId}/stats")
	log.Println("  GET  /api/workouts")
	log.Println("  POST /api/ai/generate-workout")
	log.Println("  GET  /api/nutrition")
	log.Println("  POST /api/nutrition/add-meal")
	log.Println("  GET  /api/progress")
	log.Println("  POST /api/progress/add-weight")
	log.Println("  GET  /api/ai/chat-history")
	log.Println("  POST /api/ai/chat")
	log.Println("  GET  /api/health")

	log.Printf("🚀 FitGenius backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// connectRedis returns nil when REDIS_URI is unset or Redis is unreachable;
// the chat history cache is simply skipped in that case.
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURI == "" {
		log.Println("REDIS_URI not set; chat history cache disabled")
		return nil
	}
	log.Printf("Connecting to Redis...")
	rdb, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Chat history cache disabled")
		return nil
	}
	return rdb
}
