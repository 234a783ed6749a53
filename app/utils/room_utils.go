package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveRoomID computes the opaque realtime room token for a pair of
// user ids. The ids are sorted before hashing so both orderings yield
// the same token, and the digest keeps participant ids out of the room
// name seen by clients.
func DeriveRoomID(userA, userB string) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	sum := sha256.Sum256([]byte(userA + ":" + userB))
	return hex.EncodeToString(sum[:])
}
