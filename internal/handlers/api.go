package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitgenius/backend/internal/models"
)

// ChatTranscript is what the chat routes need from the transcript store.
// Satisfied by services.ChatStore.
type ChatTranscript interface {
	Save(ctx context.Context, msg models.ChatMessage) error
	History(ctx context.Context, userID string) ([]models.ChatMessage, error)
}

// LLMSender is the text-in/text-out capability the AI routes need from the
// model provider. Satisfied by services.LLMClient.
type LLMSender interface {
	Send(ctx context.Context, systemPrompt, userText string) (string, error)
}

// API holds the route handlers' collaborators: the document store, the chat
// transcript store, and the LLM client. All are injected at startup; handlers
// keep no other state.
type API struct {
	db    *mongo.Database
	chats ChatTranscript
	llm   LLMSender // nil when GEMINI_API_KEY is unset
}

func New(db *mongo.Database, chats ChatTranscript, llm LLMSender) *API {
	return &API{db: db, chats: chats, llm: llm}
}
