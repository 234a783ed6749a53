package services

import (
	"codemate/app/models"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RequestService owns the connection request lifecycle: creation with
// symmetric dedup, the review transition, and the derived listings
// (received requests, connections, discovery feed).
type RequestService struct {
	usersCollection     *mongo.Collection
	requestsCollection  *mongo.Collection
	notificationService *NotificationService
}

// NewRequestService creates a new request service instance
func NewRequestService(usersCollection, requestsCollection *mongo.Collection, notificationService *NotificationService) *RequestService {
	return &RequestService{
		usersCollection:     usersCollection,
		requestsCollection:  requestsCollection,
		notificationService: notificationService,
	}
}

// SendRequest creates a connection request from fromUser to toUserID in
// the given status (interested or ignored). The returned string is a
// diagnostic for the best-effort recipient notification; a notification
// failure never fails the request itself.
func (s *RequestService) SendRequest(ctx context.Context, fromUser *models.User, toUserID primitive.ObjectID, status string) (*models.ConnectionRequest, string, error) {
	if !models.IsSendStatus(status) {
		return nil, "", fmt.Errorf("%w: status must be %q or %q", ErrValidation, models.StatusInterested, models.StatusIgnored)
	}

	if fromUser.ID == toUserID {
		return nil, "", ErrSelfRequest
	}

	var toUser models.User
	err := s.usersCollection.FindOne(ctx, bson.M{"_id": toUserID}).Decode(&toUser)
	if err == mongo.ErrNoDocuments {
		return nil, "", fmt.Errorf("%w: target user does not exist", ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up target user: %v", err)
	}

	// Symmetric existence check: a request from B to A blocks a new
	// request from A to B.
	pairKey := models.PairKey(fromUser.ID, toUserID)
	count, err := s.requestsCollection.CountDocuments(ctx, bson.M{"pair_key": pairKey})
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing requests: %v", err)
	}
	if count > 0 {
		return nil, "", ErrDuplicateRequest
	}

	now := time.Now()
	request := models.ConnectionRequest{
		ID:         primitive.NewObjectID(),
		FromUserID: fromUser.ID,
		ToUserID:   toUserID,
		PairKey:    pairKey,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err = s.requestsCollection.InsertOne(ctx, request)
	if mongo.IsDuplicateKeyError(err) {
		// The unique pair_key index closes the window between the check
		// above and this insert under concurrent sends.
		return nil, "", ErrDuplicateRequest
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %v", err)
	}

	notifDiag := ""
	if status == models.StatusInterested && s.notificationService != nil {
		if notifErr := s.notificationService.SendRequestNotification(&toUser, fromUser); notifErr != nil {
			log.Printf("⚠️ Request notification to %s failed: %v", toUser.EmailID, notifErr)
			notifDiag = "recipient notification could not be delivered"
		}
	}

	return &request, notifDiag, nil
}

// ReviewRequest applies an accept/reject decision to a pending request
// addressed to the recipient. The filter pins the request to the
// recipient and the interested state, so reviewing someone else's
// request or re-reviewing a resolved one reports not found.
func (s *RequestService) ReviewRequest(ctx context.Context, recipientID, requestID primitive.ObjectID, decision string) (*models.ConnectionRequest, error) {
	if !models.IsReviewStatus(decision) {
		return nil, fmt.Errorf("%w: decision must be %q or %q", ErrValidation, models.StatusAccepted, models.StatusRejected)
	}

	filter := ReviewFilter(recipientID, requestID)
	update := bson.M{
		"$set": bson.M{
			"status":     decision,
			"updated_at": time.Now(),
		},
	}

	var updated models.ConnectionRequest
	err := s.requestsCollection.FindOneAndUpdate(
		ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: no pending request to review", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to review request: %v", err)
	}

	return &updated, nil
}

// GetReceivedRequests returns the pending incoming requests for a user,
// each joined with the sender's public profile.
func (s *RequestService) GetReceivedRequests(ctx context.Context, userID primitive.ObjectID) ([]models.ReceivedRequest, error) {
	cursor, err := s.requestsCollection.Find(ctx, bson.M{
		"to_user_id": userID,
		"status":     models.StatusInterested,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch received requests: %v", err)
	}

	var requests []models.ConnectionRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode received requests: %v", err)
	}

	received := make([]models.ReceivedRequest, 0, len(requests))
	for _, request := range requests {
		profile, err := s.publicProfile(ctx, request.FromUserID)
		if err != nil {
			return nil, err
		}
		received = append(received, models.ReceivedRequest{
			ID:        request.ID,
			Status:    request.Status,
			CreatedAt: request.CreatedAt,
			FromUser:  *profile,
		})
	}

	return received, nil
}

// GetConnections returns the public profiles of every user connected to
// the given user through an accepted request, in either direction.
func (s *RequestService) GetConnections(ctx context.Context, userID primitive.ObjectID) ([]models.PublicProfile, error) {
	cursor, err := s.requestsCollection.Find(ctx, bson.M{
		"status": models.StatusAccepted,
		"$or": []bson.M{
			{"from_user_id": userID},
			{"to_user_id": userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch connections: %v", err)
	}

	var requests []models.ConnectionRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode connections: %v", err)
	}

	connections := make([]models.PublicProfile, 0, len(requests))
	for _, request := range requests {
		profile, err := s.publicProfile(ctx, request.Counterpart(userID))
		if err != nil {
			return nil, err
		}
		connections = append(connections, *profile)
	}

	return connections, nil
}

// GetFeed returns one page of discovery candidates: users the caller
// has never interacted with, newest first, optionally filtered by
// skills or gender.
func (s *RequestService) GetFeed(ctx context.Context, userID primitive.ObjectID, query models.FeedQuery) (*models.FeedPage, error) {
	page, limit := NormalizePagination(query.Page, query.Limit)

	cursor, err := s.requestsCollection.Find(ctx, bson.M{
		"$or": []bson.M{
			{"from_user_id": userID},
			{"to_user_id": userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing requests: %v", err)
	}

	var requests []models.ConnectionRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode existing requests: %v", err)
	}

	filter := bson.M{
		"_id": bson.M{"$nin": BuildExclusionList(userID, requests)},
	}
	if len(query.Skills) > 0 {
		filter["skills"] = bson.M{"$in": query.Skills}
	}
	if query.Gender != "" {
		filter["gender"] = query.Gender
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	userCursor, err := s.usersCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed users: %v", err)
	}

	var users []models.User
	if err := userCursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode feed users: %v", err)
	}

	total, err := s.usersCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count feed users: %v", err)
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}

	return &models.FeedPage{
		Users:       profiles,
		Count:       len(profiles),
		Total:       total,
		CurrentPage: page,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
	}, nil
}

func (s *RequestService) publicProfile(ctx context.Context, userID primitive.ObjectID) (*models.PublicProfile, error) {
	var user models.User
	err := s.usersCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		// Referential fields are not enforced at the storage level;
		// a dangling id degrades to an empty profile rather than
		// failing the whole listing.
		return &models.PublicProfile{ID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %v", err)
	}
	profile := user.PublicProfile()
	return &profile, nil
}

// ReviewFilter is the conditional predicate for the review update. It
// matches only a request addressed to the recipient that is still in
// the interested state, so a request addressed to someone else, or one
// already accepted or rejected, falls through to not found instead of
// being overwritten.
func ReviewFilter(recipientID, requestID primitive.ObjectID) bson.M {
	return bson.M{
		"_id":        requestID,
		"to_user_id": recipientID,
		"status":     models.StatusInterested,
	}
}

// BuildExclusionList computes the set of user ids hidden from a user's
// discovery feed: the user themself plus every counterpart of any
// request involving them, regardless of status.
func BuildExclusionList(userID primitive.ObjectID, requests []models.ConnectionRequest) []primitive.ObjectID {
	seen := map[primitive.ObjectID]bool{userID: true}
	excluded := []primitive.ObjectID{userID}
	for _, request := range requests {
		for _, id := range []primitive.ObjectID{request.FromUserID, request.ToUserID} {
			if !seen[id] {
				seen[id] = true
				excluded = append(excluded, id)
			}
		}
	}
	return excluded
}

// NormalizePagination clamps page and limit to sane values
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}
	return page, limit
}
