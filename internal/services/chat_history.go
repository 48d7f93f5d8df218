package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitgenius/backend/internal/models"
)

// ChatHistoryLimit caps the transcript window at the 50 earliest messages.
// Once a user's history exceeds it, later messages never appear in the
// history endpoint. Known quirk, kept deliberately; see DESIGN.md.
const ChatHistoryLimit = 50

const (
	chatCacheKeyPrefix = "chat:user:"
	chatCacheKeySuffix = ":history"
	chatCacheTTL       = 1 * time.Hour
)

// ChatStore persists the coaching transcript in MongoDB with an optional
// Redis read-through cache for the history window. rdb may be nil; every
// path degrades to Mongo alone.
type ChatStore struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewChatStore(db *mongo.Database, rdb *redis.Client) *ChatStore {
	return &ChatStore{db: db, rdb: rdb}
}

func chatCacheKey(userID string) string {
	return chatCacheKeyPrefix + userID + chatCacheKeySuffix
}

// Save appends a message to the transcript and invalidates the user's cached
// history window.
func (s *ChatStore) Save(ctx context.Context, msg models.ChatMessage) error {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	if _, err := s.db.Collection("chat_messages").InsertOne(ctx, msg); err != nil {
		return err
	}
	s.invalidate(ctx, msg.UserID)
	return nil
}

// History returns up to the 50 earliest messages for a user, timestamp
// ascending. Tries Redis first; on miss reads Mongo and warms the cache.
func (s *ChatStore) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	if cached, ok := s.fromCache(ctx, userID); ok {
		return cached, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(ChatHistoryLimit)

	cur, err := s.db.Collection("chat_messages").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	msgs := make([]models.ChatMessage, 0, ChatHistoryLimit)
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}

	s.warm(ctx, userID, msgs)
	return msgs, nil
}

func (s *ChatStore) fromCache(ctx context.Context, userID string) ([]models.ChatMessage, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, chatCacheKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var msgs []models.ChatMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, false
	}
	return msgs, true
}

func (s *ChatStore) warm(ctx context.Context, userID string, msgs []models.ChatMessage) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, chatCacheKey(userID), data, chatCacheTTL).Err(); err != nil {
		log.Printf("chat_history: cache warm failed for user %s: %v", userID, err)
	}
}

func (s *ChatStore) invalidate(ctx context.Context, userID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, chatCacheKey(userID)).Err(); err != nil {
		log.Printf("chat_history: cache invalidate failed for user %s: %v", userID, err)
	}
}
