package services

import "sync"

// RoomRegistry is the in-memory membership table for realtime chat
// rooms. It tracks which socket connections subscribed to which room so
// the fan-out layer can clean up on disconnect. State is process-local
// and rebuilt empty on restart.
type RoomRegistry struct {
	mu sync.RWMutex
	// room id -> socket id -> member
	rooms map[string]map[string]bool
	// socket id -> room ids, for disconnect cleanup
	sockets map[string]map[string]bool
}

// NewRoomRegistry creates an empty room registry
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms:   make(map[string]map[string]bool),
		sockets: make(map[string]map[string]bool),
	}
}

// Add subscribes a socket to a room. Adding an existing member is a
// no-op.
func (r *RoomRegistry) Add(roomID, socketID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rooms[roomID] == nil {
		r.rooms[roomID] = make(map[string]bool)
	}
	r.rooms[roomID][socketID] = true

	if r.sockets[socketID] == nil {
		r.sockets[socketID] = make(map[string]bool)
	}
	r.sockets[socketID][roomID] = true
}

// Remove unsubscribes a socket from a room. Removing a socket that is
// not a member is a no-op.
func (r *RoomRegistry) Remove(roomID, socketID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remove(roomID, socketID)
}

// RemoveSocket unsubscribes a socket from every room it joined and
// returns the rooms it was removed from. Used on disconnect.
func (r *RoomRegistry) RemoveSocket(socketID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms := make([]string, 0, len(r.sockets[socketID]))
	for roomID := range r.sockets[socketID] {
		rooms = append(rooms, roomID)
		r.remove(roomID, socketID)
	}
	return rooms
}

// Members returns the socket ids currently subscribed to a room
func (r *RoomRegistry) Members(roomID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]string, 0, len(r.rooms[roomID]))
	for socketID := range r.rooms[roomID] {
		members = append(members, socketID)
	}
	return members
}

// InRoom reports whether a socket is subscribed to a room
func (r *RoomRegistry) InRoom(roomID, socketID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[roomID][socketID]
}

func (r *RoomRegistry) remove(roomID, socketID string) {
	if members, ok := r.rooms[roomID]; ok {
		delete(members, socketID)
		if len(members) == 0 {
			delete(r.rooms, roomID)
		}
	}
	if rooms, ok := r.sockets[socketID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(r.sockets, socketID)
		}
	}
}
