package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceTrackerFirstAndLastSocket(t *testing.T) {
	tracker := NewPresenceTracker()

	assert.True(t, tracker.Track("socket-1", "user-a"))

	userID, last := tracker.Release("socket-1")
	assert.Equal(t, "user-a", userID)
	assert.True(t, last)
}

// A user with two live sockets stays online until the second one goes
func TestPresenceTrackerMultipleSockets(t *testing.T) {
	tracker := NewPresenceTracker()

	assert.True(t, tracker.Track("socket-1", "user-a"))
	assert.False(t, tracker.Track("socket-2", "user-a"))

	userID, last := tracker.Release("socket-1")
	assert.Equal(t, "user-a", userID)
	assert.False(t, last)

	userID, last = tracker.Release("socket-2")
	assert.Equal(t, "user-a", userID)
	assert.True(t, last)
}

func TestPresenceTrackerRetrackIsNoOp(t *testing.T) {
	tracker := NewPresenceTracker()

	assert.True(t, tracker.Track("socket-1", "user-a"))
	assert.False(t, tracker.Track("socket-1", "user-a"))

	userID, last := tracker.Release("socket-1")
	assert.Equal(t, "user-a", userID)
	assert.True(t, last)
}

func TestPresenceTrackerSocketSwitchesUser(t *testing.T) {
	tracker := NewPresenceTracker()

	assert.True(t, tracker.Track("socket-1", "user-a"))
	assert.True(t, tracker.Track("socket-1", "user-b"))

	userID, last := tracker.Release("socket-1")
	assert.Equal(t, "user-b", userID)
	assert.True(t, last)
}

func TestPresenceTrackerUnknownSocket(t *testing.T) {
	tracker := NewPresenceTracker()

	userID, last := tracker.Release("never-tracked")
	assert.Empty(t, userID)
	assert.False(t, last)
}

func TestPresenceTrackerDistinctUsers(t *testing.T) {
	tracker := NewPresenceTracker()

	assert.True(t, tracker.Track("socket-1", "user-a"))
	assert.True(t, tracker.Track("socket-2", "user-b"))

	userID, last := tracker.Release("socket-1")
	assert.Equal(t, "user-a", userID)
	assert.True(t, last)
}
