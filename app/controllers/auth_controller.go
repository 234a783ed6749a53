package controllers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codemate/app/middlewares"
	"codemate/app/models"
	"codemate/app/services"
	"codemate/app/utils"
	"codemate/redis"
)

// AuthController handles registration, login and logout
type AuthController struct {
	usersCollection     *mongo.Collection
	redisService        *redis.Service
	notificationService *services.NotificationService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(usersCollection *mongo.Collection, redisService *redis.Service, notificationService *services.NotificationService) *AuthController {
	return &AuthController{
		usersCollection:     usersCollection,
		redisService:        redisService,
		notificationService: notificationService,
	}
}

// Register handles user registration requests
func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request format",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"details": err.Error(),
		})
	}

	emailID := strings.ToLower(strings.TrimSpace(req.EmailID))

	// Check for an existing account first for a specific message; the
	// unique email index is the backstop under concurrent registration
	count, err := c.usersCollection.CountDocuments(context.Background(), bson.M{"email_id": emailID})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Server error during registration",
		})
	}
	if count > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "User with this email already exists",
		})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Server error during registration",
		})
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		EmailID:   emailID,
		Password:  hash,
		Age:       req.Age,
		Gender:    strings.ToLower(req.Gender),
		Skills:    req.Skills,
		Bio:       req.Bio,
		PhotoURL:  req.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = c.usersCollection.InsertOne(context.Background(), user)
	if mongo.IsDuplicateKeyError(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "User with this email already exists",
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Server error during registration",
		})
	}

	// Best-effort welcome email, never blocks registration
	go func(u models.User) {
		if err := c.notificationService.SendWelcomeEmail(&u); err != nil {
			log.Printf("⚠️ Welcome email to %s failed: %v", u.EmailID, err)
		}
	}(user)

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles user login requests
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req models.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request format",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Please provide both email and password",
		})
	}

	emailID := strings.ToLower(strings.TrimSpace(req.EmailID))

	var user models.User
	err := c.usersCollection.FindOne(context.Background(), bson.M{"email_id": emailID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid email or password",
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Server error during login",
		})
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid email or password",
		})
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.EmailID, user.FirstName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to generate token",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":    "success",
		"_id":       user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"emailId":   user.EmailID,
		"token":     token,
	})
}

// Logout revokes the caller's token for its remaining validity
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	token, err := middlewares.GetTokenFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	claims, err := middlewares.GetClaimsFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	if err := c.redisService.RevokeToken(token, utils.TokenRemainingValidity(claims)); err != nil {
		log.Printf("⚠️ Token revocation failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to logout",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Logged out successfully",
	})
}
