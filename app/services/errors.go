package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these
// to HTTP status codes with errors.Is; anything else is reported as a
// generic persistence failure without leaking storage detail.
var (
	// ErrValidation indicates malformed input such as a bad status value
	ErrValidation = errors.New("invalid input")

	// ErrSelfRequest indicates a user targeting themself
	ErrSelfRequest = errors.New("cannot send request to yourself")

	// ErrNotFound indicates a referenced user or request does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateRequest indicates a request already exists between the
	// pair in either direction
	ErrDuplicateRequest = errors.New("request already exists between these users")

	// ErrNotConnected indicates the two users have no accepted
	// connection and may not chat
	ErrNotConnected = errors.New("users are not connected")
)
