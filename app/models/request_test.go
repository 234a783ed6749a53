package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPairKeySymmetric(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	assert.Equal(t, PairKey(a, b), PairKey(b, a))
}

func TestPairKeyCanonicalOrder(t *testing.T) {
	a, err := primitive.ObjectIDFromHex("000000000000000000000001")
	require.NoError(t, err)
	b, err := primitive.ObjectIDFromHex("000000000000000000000002")
	require.NoError(t, err)

	want := "000000000000000000000001_000000000000000000000002"
	assert.Equal(t, want, PairKey(a, b))
	assert.Equal(t, want, PairKey(b, a))
}

func TestPairKeyDistinctPairs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	assert.NotEqual(t, PairKey(a, b), PairKey(a, c))
}

func TestIsSendStatus(t *testing.T) {
	assert.True(t, IsSendStatus(StatusInterested))
	assert.True(t, IsSendStatus(StatusIgnored))
	assert.False(t, IsSendStatus(StatusAccepted))
	assert.False(t, IsSendStatus(StatusRejected))
	assert.False(t, IsSendStatus("pending"))
	assert.False(t, IsSendStatus(""))
}

func TestIsReviewStatus(t *testing.T) {
	assert.True(t, IsReviewStatus(StatusAccepted))
	assert.True(t, IsReviewStatus(StatusRejected))
	assert.False(t, IsReviewStatus(StatusInterested))
	assert.False(t, IsReviewStatus(StatusIgnored))
	assert.False(t, IsReviewStatus(""))
}

func TestCounterpart(t *testing.T) {
	from := primitive.NewObjectID()
	to := primitive.NewObjectID()
	request := ConnectionRequest{FromUserID: from, ToUserID: to}

	assert.Equal(t, to, request.Counterpart(from))
	assert.Equal(t, from, request.Counterpart(to))
}
