package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestDeriveRoomIDOrderIndependence verifies both orderings of the same
// pair map to the same room.
func TestDeriveRoomIDOrderIndependence(t *testing.T) {
	a := "64f1b2c3d4e5f60718293a4b"
	b := "64f1b2c3d4e5f60718293a4c"

	assert.Equal(t, DeriveRoomID(a, b), DeriveRoomID(b, a))
}

// TestDeriveRoomIDDistinctPairs verifies different pairs land in
// different rooms.
func TestDeriveRoomIDDistinctPairs(t *testing.T) {
	a := "64f1b2c3d4e5f60718293a4b"
	b := "64f1b2c3d4e5f60718293a4c"
	c := "64f1b2c3d4e5f60718293a4d"

	assert.NotEqual(t, DeriveRoomID(a, b), DeriveRoomID(a, c))
	assert.NotEqual(t, DeriveRoomID(a, b), DeriveRoomID(b, c))
}

// TestDeriveRoomIDCanonicalIdForm verifies that ids parsed from
// differently cased hex spellings still map to the same room once
// rendered in their canonical form.
func TestDeriveRoomIDCanonicalIdForm(t *testing.T) {
	upper, err := primitive.ObjectIDFromHex("64F1B2C3D4E5F60718293A4B")
	require.NoError(t, err)
	lower, err := primitive.ObjectIDFromHex("64f1b2c3d4e5f60718293a4b")
	require.NoError(t, err)
	peer := "64f1b2c3d4e5f60718293a4c"

	assert.Equal(t, DeriveRoomID(lower.Hex(), peer), DeriveRoomID(upper.Hex(), peer))
	// The raw strings themselves are case sensitive, which is why the
	// parsed form is the one to hash
	assert.NotEqual(t,
		DeriveRoomID("64F1B2C3D4E5F60718293A4B", peer),
		DeriveRoomID("64f1b2c3d4e5f60718293a4b", peer),
	)
}

// TestDeriveRoomIDOpaque verifies the room token is a fixed-length hex
// digest that does not leak either participant id.
func TestDeriveRoomIDOpaque(t *testing.T) {
	a := "64f1b2c3d4e5f60718293a4b"
	b := "64f1b2c3d4e5f60718293a4c"

	roomID := DeriveRoomID(a, b)
	assert.Len(t, roomID, 64)
	assert.NotContains(t, roomID, a)
	assert.NotContains(t, roomID, b)
}
