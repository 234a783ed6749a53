package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codemate/app/middlewares"
	"codemate/app/services"
)

// ChatController handles chat history retrieval
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new chat controller instance
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// GetChat handles GET /api/chat/:targetUserId
func (c *ChatController) GetChat(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	targetUserID, err := primitive.ObjectIDFromHex(ctx.Params("targetUserId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid user ID format",
		})
	}

	history, err := c.chatService.GetHistory(ctx.Context(), user.ID, targetUserID)
	if errors.Is(err, services.ErrNotConnected) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "You are not connected with this user",
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error fetching chat",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":   "success",
		"count":    len(history),
		"messages": history,
	})
}
