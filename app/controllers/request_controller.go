package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codemate/app/middlewares"
	"codemate/app/services"
)

// RequestController handles the connection request endpoints
type RequestController struct {
	requestService *services.RequestService
}

// NewRequestController creates a new request controller instance
func NewRequestController(requestService *services.RequestService) *RequestController {
	return &RequestController{
		requestService: requestService,
	}
}

// SendRequest handles POST /api/request/send/:status/:toUserId
func (c *RequestController) SendRequest(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	toUserID, err := primitive.ObjectIDFromHex(ctx.Params("toUserId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid user ID format",
		})
	}

	request, notifDiag, err := c.requestService.SendRequest(ctx.Context(), user, toUserID, ctx.Params("status"))
	if err != nil {
		return requestErrorResponse(ctx, err, "Error while sending connection request")
	}

	response := fiber.Map{
		"status":  "success",
		"message": "Connection request sent successfully",
		"data":    request,
	}
	if notifDiag != "" {
		response["notificationError"] = notifDiag
	}
	return ctx.JSON(response)
}

// ReviewRequest handles POST /api/request/review/:status/:requestId
func (c *RequestController) ReviewRequest(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	requestID, err := primitive.ObjectIDFromHex(ctx.Params("requestId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request ID format",
		})
	}

	decision := ctx.Params("status")
	request, err := c.requestService.ReviewRequest(ctx.Context(), user.ID, requestID, decision)
	if err != nil {
		return requestErrorResponse(ctx, err, "Error while reviewing connection request")
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Connection request %s successfully", decision),
		"data":    request,
	})
}

// requestErrorResponse maps service errors to HTTP responses
func requestErrorResponse(ctx *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrSelfRequest),
		errors.Is(err, services.ErrDuplicateRequest):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": fallback,
		})
	}
}
