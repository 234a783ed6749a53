package services

import "sync"

// PresenceTracker counts live socket connections per user so online
// presence is cleared only when a user's last connection goes away. A
// user chatting from two tabs stays online while either survives.
type PresenceTracker struct {
	mu sync.Mutex
	// socket id -> user id
	sockets map[string]string
	// user id -> live socket count
	counts map[string]int
}

// NewPresenceTracker creates an empty presence tracker
func NewPresenceTracker() *PresenceTracker {
	return &PresenceTracker{
		sockets: make(map[string]string),
		counts:  make(map[string]int),
	}
}

// Track associates a socket with a user and reports whether this is
// the user's first live socket. Re-tracking the same pair is a no-op;
// a socket switching users releases its previous association first.
func (p *PresenceTracker) Track(socketID, userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if previous, ok := p.sockets[socketID]; ok {
		if previous == userID {
			return false
		}
		p.release(socketID, previous)
	}

	p.sockets[socketID] = userID
	p.counts[userID]++
	return p.counts[userID] == 1
}

// Release drops a socket and returns the user it belonged to, plus
// whether it was that user's last live socket. Unknown sockets return
// an empty user id.
func (p *PresenceTracker) Release(socketID string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	userID, ok := p.sockets[socketID]
	if !ok {
		return "", false
	}
	return userID, p.release(socketID, userID)
}

func (p *PresenceTracker) release(socketID, userID string) bool {
	delete(p.sockets, socketID)
	p.counts[userID]--
	if p.counts[userID] <= 0 {
		delete(p.counts, userID)
		return true
	}
	return false
}
