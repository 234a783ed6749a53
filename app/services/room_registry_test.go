package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomRegistryAddAndMembers(t *testing.T) {
	registry := NewRoomRegistry()

	registry.Add("room-1", "socket-a")
	registry.Add("room-1", "socket-b")
	registry.Add("room-2", "socket-a")

	assert.ElementsMatch(t, []string{"socket-a", "socket-b"}, registry.Members("room-1"))
	assert.ElementsMatch(t, []string{"socket-a"}, registry.Members("room-2"))
	assert.True(t, registry.InRoom("room-1", "socket-a"))
	assert.False(t, registry.InRoom("room-2", "socket-b"))
}

func TestRoomRegistryAddIsIdempotent(t *testing.T) {
	registry := NewRoomRegistry()

	registry.Add("room-1", "socket-a")
	registry.Add("room-1", "socket-a")

	assert.Len(t, registry.Members("room-1"), 1)
}

func TestRoomRegistryRemove(t *testing.T) {
	registry := NewRoomRegistry()

	registry.Add("room-1", "socket-a")
	registry.Remove("room-1", "socket-a")

	assert.False(t, registry.InRoom("room-1", "socket-a"))
	assert.Empty(t, registry.Members("room-1"))

	// Removing a non-member must not panic or alter state
	registry.Remove("room-1", "socket-a")
	registry.Remove("no-such-room", "socket-a")
}

func TestRoomRegistryRemoveSocket(t *testing.T) {
	registry := NewRoomRegistry()

	registry.Add("room-1", "socket-a")
	registry.Add("room-2", "socket-a")
	registry.Add("room-1", "socket-b")

	rooms := registry.RemoveSocket("socket-a")

	assert.ElementsMatch(t, []string{"room-1", "room-2"}, rooms)
	assert.False(t, registry.InRoom("room-1", "socket-a"))
	assert.False(t, registry.InRoom("room-2", "socket-a"))
	assert.True(t, registry.InRoom("room-1", "socket-b"))
}

func TestRoomRegistryRemoveSocketUnknown(t *testing.T) {
	registry := NewRoomRegistry()
	assert.Empty(t, registry.RemoveSocket("never-joined"))
}
