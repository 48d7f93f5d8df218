package models

import "time"

// ChatMessage is one entry of a user's coaching transcript, stored in the
// chat_messages collection. The transcript is append-only; there is no
// conversation or session boundary beyond userId.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Text      string    `bson:"text" json:"text"`
	IsUser    bool      `bson:"isUser" json:"isUser"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
