package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection request statuses. A request is created as interested or
// ignored by the sender; the recipient moves an interested request to
// accepted or rejected, which is terminal.
const (
	StatusInterested = "interested"
	StatusIgnored    = "ignored"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
)

// IsSendStatus reports whether status is valid for creating a request
func IsSendStatus(status string) bool {
	return status == StatusInterested || status == StatusIgnored
}

// IsReviewStatus reports whether status is a valid review decision
func IsReviewStatus(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// ConnectionRequest represents a directed connection proposal between
// two users. PairKey canonicalizes the unordered pair so that a unique
// index enforces at most one request per pair regardless of direction.
type ConnectionRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FromUserID primitive.ObjectID `bson:"from_user_id" json:"fromUserId"`
	ToUserID   primitive.ObjectID `bson:"to_user_id" json:"toUserId"`
	PairKey    string             `bson:"pair_key" json:"-"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// PairKey derives the canonical key for an unordered user pair. Both
// orderings of the same two ids produce the same key.
func PairKey(a, b primitive.ObjectID) string {
	ah, bh := a.Hex(), b.Hex()
	if ah > bh {
		ah, bh = bh, ah
	}
	return ah + "_" + bh
}

// Counterpart returns the other participant of the request relative to
// the given user
func (r *ConnectionRequest) Counterpart(userID primitive.ObjectID) primitive.ObjectID {
	if r.FromUserID == userID {
		return r.ToUserID
	}
	return r.FromUserID
}

// ReceivedRequest is an incoming pending request joined with the
// sender's public profile
type ReceivedRequest struct {
	ID        primitive.ObjectID `json:"_id"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	FromUser  PublicProfile      `json:"fromUser"`
}
