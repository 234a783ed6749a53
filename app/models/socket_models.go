package models

// JoinChatPayload is the joinChat / leaveChat event payload
type JoinChatPayload struct {
	SendingUser  string `json:"sendingUser"`
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
}

// SendMessagePayload is the sendMessage event payload
type SendMessagePayload struct {
	SendingUser  string `json:"sendingUser"`
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId"`
	Text         string `json:"text"`
}

// SocketError is the error payload emitted on the realtime channel
type SocketError struct {
	Status    string `json:"status"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	SocketID  string `json:"socket_id"`
	Event     string `json:"event"`
}

// JoinAck confirms a successful room join
type JoinAck struct {
	Status    string `json:"status"`
	RoomID    string `json:"roomId"`
	Timestamp string `json:"timestamp"`
	SocketID  string `json:"socket_id"`
	Event     string `json:"event"`
}
