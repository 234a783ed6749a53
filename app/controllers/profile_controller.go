package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"codemate/app/middlewares"
	"codemate/app/models"
	"codemate/app/utils"
)

// allowedProfileFields is the whitelist of updatable profile fields;
// email and password have dedicated flows
var allowedProfileFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"gender":    true,
	"skills":    true,
	"bio":       true,
	"age":       true,
	"photoURL":  true,
}

// ProfileController handles profile retrieval and mutation
type ProfileController struct {
	usersCollection *mongo.Collection
}

// NewProfileController creates a new profile controller instance
func NewProfileController(usersCollection *mongo.Collection) *ProfileController {
	return &ProfileController{
		usersCollection: usersCollection,
	}
}

// GetProfile returns the authenticated user's own profile
func (c *ProfileController) GetProfile(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"user":    user,
	})
}

// GetUserByID returns a user's profile by id with credentials stripped
func (c *ProfileController) GetUserByID(ctx *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid user ID format",
		})
	}

	var user models.User
	err = c.usersCollection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "User not found",
		})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Something went wrong while fetching user",
		})
	}

	return ctx.JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

// UpdateProfile applies a whitelisted partial update to the caller's
// profile
func (c *ProfileController) UpdateProfile(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	// Reject unknown fields before validating known ones
	var raw map[string]interface{}
	if err := ctx.BodyParser(&raw); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request format",
		})
	}

	var invalidFields []string
	for field := range raw {
		if !allowedProfileFields[field] {
			invalidFields = append(invalidFields, field)
		}
	}
	if len(invalidFields) > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":        "error",
			"message":       "Invalid fields in update request",
			"invalidFields": invalidFields,
		})
	}

	var req models.UpdateProfileRequest
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

	set := bson.M{"updated_at": time.Now()}
	if req.FirstName != "" {
		set["first_name"] = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		set["last_name"] = strings.TrimSpace(req.LastName)
	}
	if req.Gender != "" {
		set["gender"] = strings.ToLower(req.Gender)
	}
	if req.Skills != nil {
		set["skills"] = req.Skills
	}
	if req.Bio != "" {
		set["bio"] = req.Bio
	}
	if req.Age != 0 {
		set["age"] = req.Age
	}
	if req.PhotoURL != "" {
		set["photo_url"] = req.PhotoURL
	}

	var updated models.User
	err = c.usersCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error updating profile",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

// ChangePassword verifies the current password and stores a new hash
func (c *ProfileController) ChangePassword(ctx *fiber.Ctx) error {
	user, err := middlewares.GetUserFromContext(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "User not authenticated",
		})
	}

	var req models.ChangePasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request format",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "New password must be between 6 and 30 characters",
		})
	}

	if !utils.CheckPassword(user.Password, req.CurrentPassword) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "error",
			"message": "Current password is incorrect",
		})
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error changing password",
		})
	}

	_, err = c.usersCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"password": hash, "updated_at": time.Now()}},
	)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Error changing password",
		})
	}

	return ctx.JSON(fiber.Map{
		"status":  "success",
		"message": "Password changed successfully",
	})
}
