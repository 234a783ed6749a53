package sockets

import (
	"codemate/app/models"
	"codemate/app/services"
	"codemate/app/utils"
	"codemate/redis"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	socketio "github.com/doquangtan/socket.io/v4"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocketIoHandler handles the realtime chat channel: room membership,
// message fan-out and presence
type SocketIoHandler struct {
	io           *socketio.Io
	chatService  *services.ChatService
	registry     *services.RoomRegistry
	presence     *services.PresenceTracker
	redisService *redis.Service
}

// NewSocketHandler creates a new Socket.IO handler instance
func NewSocketHandler(chatService *services.ChatService, redisService *redis.Service) *SocketIoHandler {
	io := socketio.New()

	handler := &SocketIoHandler{
		io:           io,
		chatService:  chatService,
		registry:     services.NewRoomRegistry(),
		presence:     services.NewPresenceTracker(),
		redisService: redisService,
	}

	handler.setupSocketHandlers()
	return handler
}

// Registry exposes the room membership table
func (h *SocketIoHandler) Registry() *services.RoomRegistry {
	return h.registry
}

// setupSocketHandlers configures all Socket.IO event handlers
func (h *SocketIoHandler) setupSocketHandlers() {
	h.io.OnAuthorization(func(params map[string]string) bool {
		// A bearer token may be supplied at handshake time; without one
		// the connection is still accepted, and every chat event is
		// gated on the accepted-connection check instead.
		if token, ok := params["token"]; ok && token != "" {
			if _, err := utils.ValidateJWTToken(token); err != nil {
				log.Printf("❌ Socket handshake rejected: %v", err)
				return false
			}
		}
		return true
	})

	h.io.OnConnection(func(socket *socketio.Socket) {
		log.Printf("✅ Socket connected: %s (namespace: %s)", socket.Id, socket.Nps)

		socket.On("joinChat", func(event *socketio.EventPayload) {
			var payload models.JoinChatPayload
			if !h.parsePayload(socket, event, "joinChat", &payload) {
				return
			}

			userID, targetUserID, ok := h.parsePair(socket, payload.UserID, payload.TargetUserID)
			if !ok {
				return
			}

			// Fail closed: only connected pairs may share a room
			connected, err := h.chatService.Authorize(context.Background(), userID, targetUserID)
			if err != nil {
				h.emitError(socket, "joinChat", "Failed to verify connection")
				return
			}
			if !connected {
				h.emitError(socket, "joinChat", "You are not connected with this user")
				return
			}

			// Derive the room from the parsed ids so differently cased
			// hex spellings of the same pair land in the same room
			roomID := utils.DeriveRoomID(userID.Hex(), targetUserID.Hex())
			h.registry.Add(roomID, socket.Id)
			socket.Join(roomID)

			h.presence.Track(socket.Id, userID.Hex())
			if err := h.redisService.SetOnline(userID.Hex()); err != nil {
				log.Printf("⚠️ Presence update failed: %v", err)
			}

			log.Printf("💬 %s joined room %s", payload.SendingUser, roomID)
			socket.Emit("joinedChat", models.JoinAck{
				Status:    "success",
				RoomID:    roomID,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				SocketID:  socket.Id,
				Event:     "joinedChat",
			})
		})

		socket.On("sendMessage", func(event *socketio.EventPayload) {
			var payload models.SendMessagePayload
			if !h.parsePayload(socket, event, "sendMessage", &payload) {
				return
			}

			userID, targetUserID, ok := h.parsePair(socket, payload.UserID, payload.TargetUserID)
			if !ok {
				return
			}

			// Persist first; an unauthorized or failed append must not
			// be broadcast
			message, err := h.chatService.AppendMessage(context.Background(), userID, targetUserID, userID, payload.Text)
			if errors.Is(err, services.ErrNotConnected) {
				h.emitError(socket, "sendMessage", "You are not connected with this user")
				return
			}
			if err != nil {
				h.emitError(socket, "sendMessage", "Failed to send message")
				return
			}

			roomID := utils.DeriveRoomID(userID.Hex(), targetUserID.Hex())
			h.io.To(roomID).Emit("receiveMessage", models.ChatMessagePayload{
				UserID:       userID.Hex(),
				TargetUserID: targetUserID.Hex(),
				SendingUser:  payload.SendingUser,
				Text:         message.Text,
				Timestamp:    message.CreatedAt.UTC().Format(time.RFC3339),
			})
		})

		socket.On("leaveChat", func(event *socketio.EventPayload) {
			var payload models.JoinChatPayload
			if !h.parsePayload(socket, event, "leaveChat", &payload) {
				return
			}

			userID, targetUserID, ok := h.parsePair(socket, payload.UserID, payload.TargetUserID)
			if !ok {
				return
			}

			roomID := utils.DeriveRoomID(userID.Hex(), targetUserID.Hex())
			h.registry.Remove(roomID, socket.Id)
			socket.Leave(roomID)
			log.Printf("💬 %s left room %s", payload.SendingUser, roomID)
		})

		socket.On("disconnecting", func(event *socketio.EventPayload) {
			log.Printf("🔌 Socket disconnecting: %s (namespace: %s)", socket.Id, socket.Nps)
		})

		socket.On("disconnect", func(event *socketio.EventPayload) {
			rooms := h.registry.RemoveSocket(socket.Id)

			// Only the user's last live socket clears their presence; a
			// second tab keeps them online
			if userID, last := h.presence.Release(socket.Id); last {
				if err := h.redisService.SetOffline(userID); err != nil {
					log.Printf("⚠️ Presence cleanup failed: %v", err)
				}
			}

			log.Printf("🔌 Socket disconnected: %s (left %d room(s))", socket.Id, len(rooms))
		})
	})
}

// parsePayload decodes the first event datum into dest, emitting an
// error payload on failure
func (h *SocketIoHandler) parsePayload(socket *socketio.Socket, event *socketio.EventPayload, eventName string, dest interface{}) bool {
	if len(event.Data) == 0 {
		h.emitError(socket, eventName, "No payload provided")
		return false
	}

	data, ok := event.Data[0].(map[string]interface{})
	if !ok {
		h.emitError(socket, eventName, "Invalid payload format")
		return false
	}

	dataJSON, _ := json.Marshal(data)
	if err := json.Unmarshal(dataJSON, dest); err != nil {
		h.emitError(socket, eventName, "Failed to parse payload")
		return false
	}

	return true
}

// parsePair validates the two user ids carried by a chat event
func (h *SocketIoHandler) parsePair(socket *socketio.Socket, userID, targetUserID string) (primitive.ObjectID, primitive.ObjectID, bool) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		h.emitError(socket, "chat", "Invalid userId format")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	tid, err := primitive.ObjectIDFromHex(targetUserID)
	if err != nil {
		h.emitError(socket, "chat", "Invalid targetUserId format")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return uid, tid, true
}

// emitError sends a structured error payload to the socket
func (h *SocketIoHandler) emitError(socket *socketio.Socket, field, message string) {
	socket.Emit("connection_error", models.SocketError{
		Status:    "error",
		Field:     field,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		SocketID:  socket.Id,
		Event:     "connection_error",
	})
}

// SetupSocketRoutes configures Socket.IO routes for the Fiber app
func (h *SocketIoHandler) SetupSocketRoutes(app *fiber.App) {
	app.Use("/", h.io.Middleware)
	app.Route("/socket.io", h.io.FiberRoute)
}
