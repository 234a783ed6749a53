package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a single chat message inside a chat document
type Message struct {
	SenderID  primitive.ObjectID `bson:"sender_id" json:"senderId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Chat holds the append-only conversation between two connected users.
// One document exists per unordered participant pair, keyed by the same
// canonical pair key used for connection requests.
type Chat struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"`
	PairKey      string               `bson:"pair_key" json:"-"`
	Messages     []Message            `bson:"messages" json:"messages"`
}

// ChatMessageView is a message with its sender resolved to display
// fields for history responses
type ChatMessageView struct {
	SenderID  primitive.ObjectID `json:"senderId"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName,omitempty"`
	Text      string             `json:"text"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ChatMessagePayload is the realtime payload fanned out to a room
type ChatMessagePayload struct {
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	SendingUser  string `json:"sendingUser"`
	Text         string `json:"text"`
	Timestamp    string `json:"timestamp"`
}
