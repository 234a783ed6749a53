package services

import (
	"codemate/app/models"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatService gates conversational access on accepted connections and
// persists chat history as one document per participant pair.
type ChatService struct {
	usersCollection    *mongo.Collection
	requestsCollection *mongo.Collection
	chatsCollection    *mongo.Collection
}

// NewChatService creates a new chat service instance
func NewChatService(usersCollection, requestsCollection, chatsCollection *mongo.Collection) *ChatService {
	return &ChatService{
		usersCollection:    usersCollection,
		requestsCollection: requestsCollection,
		chatsCollection:    chatsCollection,
	}
}

// Authorize reports whether two users share an accepted connection in
// either direction
func (s *ChatService) Authorize(ctx context.Context, userA, userB primitive.ObjectID) (bool, error) {
	count, err := s.requestsCollection.CountDocuments(ctx, bson.M{
		"pair_key": models.PairKey(userA, userB),
		"status":   models.StatusAccepted,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check connection: %v", err)
	}
	return count > 0, nil
}

// GetHistory returns the chat messages between two users with each
// sender resolved to display fields. Callers without an accepted
// connection are rejected; a pair that has never chatted gets an empty
// history, not an error.
func (s *ChatService) GetHistory(ctx context.Context, userA, userB primitive.ObjectID) ([]models.ChatMessageView, error) {
	connected, err := s.Authorize(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, ErrNotConnected
	}

	var chat models.Chat
	err = s.chatsCollection.FindOne(ctx, bson.M{"pair_key": models.PairKey(userA, userB)}).Decode(&chat)
	if err == mongo.ErrNoDocuments {
		return []models.ChatMessageView{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat: %v", err)
	}

	// Resolve sender names once per participant, not per message
	names := map[primitive.ObjectID]models.User{}
	for _, participant := range chat.Participants {
		var user models.User
		if err := s.usersCollection.FindOne(ctx, bson.M{"_id": participant}).Decode(&user); err == nil {
			names[participant] = user
		}
	}

	history := make([]models.ChatMessageView, 0, len(chat.Messages))
	for _, message := range chat.Messages {
		sender := names[message.SenderID]
		history = append(history, models.ChatMessageView{
			SenderID:  message.SenderID,
			FirstName: sender.FirstName,
			LastName:  sender.LastName,
			Text:      message.Text,
			CreatedAt: message.CreatedAt,
		})
	}

	return history, nil
}

// AppendMessage stores a message in the pair's chat document, creating
// the document on first message. The upsert is keyed on the canonical
// pair key backed by a unique index, so concurrent first messages for
// the same pair land in a single document instead of two divergent
// ones.
func (s *ChatService) AppendMessage(ctx context.Context, userA, userB, senderID primitive.ObjectID, text string) (*models.Message, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrValidation)
	}
	if senderID != userA && senderID != userB {
		return nil, fmt.Errorf("%w: sender is not a participant", ErrValidation)
	}

	connected, err := s.Authorize(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, ErrNotConnected
	}

	message := models.Message{
		SenderID:  senderID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	first, second := userA, userB
	if first.Hex() > second.Hex() {
		first, second = second, first
	}

	_, err = s.chatsCollection.UpdateOne(ctx,
		bson.M{"pair_key": models.PairKey(userA, userB)},
		bson.M{
			"$push":        bson.M{"messages": message},
			"$setOnInsert": bson.M{"participants": []primitive.ObjectID{first, second}},
		},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		// Lost an upsert race for the first message; the document now
		// exists, so the push alone succeeds.
		_, err = s.chatsCollection.UpdateOne(ctx,
			bson.M{"pair_key": models.PairKey(userA, userB)},
			bson.M{"$push": bson.M{"messages": message}},
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %v", err)
	}

	return &message, nil
}
