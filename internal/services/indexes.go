package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes configures indexes for the hot query paths. Called on startup
// from main after Mongo has connected.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string]mongo.IndexModel{
		// (userId, timestamp) supports the ascending history window.
		"chat_messages": {
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "timestamp", Value: 1},
			},
			Options: options.Index().SetName("idx_user_timestamp"),
		},
		// (userId, date) supports the weekly count and the streak fetch.
		"workout_logs": {
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().SetName("idx_user_date"),
		},
	}

	for col, model := range indexes {
		if _, err := db.Collection(col).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
