package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"codemate/app/middlewares"
	"codemate/app/models"
	"codemate/app/services"
	"codemate/config"
)

// PaymentController handles membership payment endpoints
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new payment controller instance
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePayment handles POST /api/payment/create
func (c *PaymentController) CreatePayment(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	var req models.CreatePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request format",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "planType must be one of: silver, gold",
		})
	}

	payment, err := c.paymentService.CreateOrder(ctx.Context(), user, req.PlanType)
	if errors.Is(err, services.ErrValidation) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error while creating payment order",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"payment": payment,
		"keyId":   config.RazorpayKeyID,
	})
}
