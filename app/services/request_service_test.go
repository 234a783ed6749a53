package services

import (
	"context"
	"errors"
	"testing"

	"codemate/app/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// matchesReviewFilter applies the review predicate to an in-memory
// request, mirroring the storage-side match.
func matchesReviewFilter(recipientID, requestID primitive.ObjectID, request models.ConnectionRequest) bool {
	return request.ID == requestID &&
		request.ToUserID == recipientID &&
		request.Status == models.StatusInterested
}

func TestReviewFilterMatchesOnlyPendingAddressedRequests(t *testing.T) {
	sender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()
	requestID := primitive.NewObjectID()

	pending := models.ConnectionRequest{
		ID:         requestID,
		FromUserID: sender,
		ToUserID:   recipient,
		Status:     models.StatusInterested,
	}

	filter := ReviewFilter(recipient, requestID)
	assert.Equal(t, requestID, filter["_id"])
	assert.Equal(t, recipient, filter["to_user_id"])
	assert.Equal(t, models.StatusInterested, filter["status"])

	assert.True(t, matchesReviewFilter(recipient, requestID, pending))

	// A resolved request can never be reviewed again
	accepted := pending
	accepted.Status = models.StatusAccepted
	assert.False(t, matchesReviewFilter(recipient, requestID, accepted))

	rejected := pending
	rejected.Status = models.StatusRejected
	assert.False(t, matchesReviewFilter(recipient, requestID, rejected))

	// Only the addressee may review; the sender cannot decide their
	// own request
	assert.False(t, matchesReviewFilter(sender, requestID, pending))
	assert.False(t, matchesReviewFilter(primitive.NewObjectID(), requestID, pending))
}

func TestReviewRequestRejectsInvalidDecision(t *testing.T) {
	service := NewRequestService(nil, nil, nil)

	for _, decision := range []string{models.StatusInterested, models.StatusIgnored, "pending", ""} {
		_, err := service.ReviewRequest(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), decision)
		assert.True(t, errors.Is(err, ErrValidation), "decision %q", decision)
	}
}

func TestSendRequestRejectsInvalidStatusAndSelfTarget(t *testing.T) {
	service := NewRequestService(nil, nil, nil)
	user := &models.User{ID: primitive.NewObjectID()}

	for _, status := range []string{models.StatusAccepted, models.StatusRejected, ""} {
		_, _, err := service.SendRequest(context.Background(), user, primitive.NewObjectID(), status)
		assert.True(t, errors.Is(err, ErrValidation), "status %q", status)
	}

	_, _, err := service.SendRequest(context.Background(), user, user.ID, models.StatusInterested)
	assert.True(t, errors.Is(err, ErrSelfRequest))
}

func TestBuildExclusionListAlwaysExcludesSelf(t *testing.T) {
	me := primitive.NewObjectID()

	excluded := BuildExclusionList(me, nil)

	assert.Equal(t, []primitive.ObjectID{me}, excluded)
}

func TestBuildExclusionListCoversBothDirections(t *testing.T) {
	me := primitive.NewObjectID()
	sender := primitive.NewObjectID()
	recipient := primitive.NewObjectID()

	requests := []models.ConnectionRequest{
		{FromUserID: sender, ToUserID: me, Status: models.StatusInterested},
		{FromUserID: me, ToUserID: recipient, Status: models.StatusIgnored},
	}

	excluded := BuildExclusionList(me, requests)

	assert.ElementsMatch(t, []primitive.ObjectID{me, sender, recipient}, excluded)
}

func TestBuildExclusionListDeduplicates(t *testing.T) {
	me := primitive.NewObjectID()
	other := primitive.NewObjectID()

	requests := []models.ConnectionRequest{
		{FromUserID: me, ToUserID: other, Status: models.StatusAccepted},
		{FromUserID: other, ToUserID: me, Status: models.StatusRejected},
	}

	excluded := BuildExclusionList(me, requests)

	assert.ElementsMatch(t, []primitive.ObjectID{me, other}, excluded)
}

func TestNormalizePaginationDefaults(t *testing.T) {
	page, limit := NormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePagination(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestNormalizePaginationCapsLimit(t *testing.T) {
	page, limit := NormalizePagination(2, 500)
	assert.Equal(t, 2, page)
	assert.Equal(t, 50, limit)
}

func TestNormalizePaginationPassesThroughValidValues(t *testing.T) {
	page, limit := NormalizePagination(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}
