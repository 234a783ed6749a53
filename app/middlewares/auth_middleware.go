package middlewares

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"codemate/app/models"
	"codemate/app/utils"
	"codemate/redis"
)

// JWTMiddleware validates bearer tokens, rejects revoked ones and
// resolves the authenticated user onto the request context
func JWTMiddleware(usersCollection *mongo.Collection, redisService *redis.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid authorization header format",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateJWTToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid token, authorization denied",
			})
		}

		// Logged-out tokens stay invalid until their natural expiry
		revoked, err := redisService.IsTokenRevoked(tokenString)
		if err != nil {
			log.Printf("⚠️ Token revocation check failed: %v", err)
		}
		if revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Token has been revoked",
			})
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid token, authorization denied",
			})
		}

		var user models.User
		err = usersCollection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "User not found for token",
			})
		}

		c.Locals("user", &user)
		c.Locals("token", tokenString)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// GetUserFromContext retrieves the authenticated user set by the
// middleware
func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals("user").(*models.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// GetTokenFromContext retrieves the raw bearer token set by the
// middleware
func GetTokenFromContext(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("token").(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}

// GetClaimsFromContext retrieves the verified JWT claims set by the
// middleware
func GetClaimsFromContext(c *fiber.Ctx) (*utils.JWTClaims, error) {
	claims, ok := c.Locals("claims").(*utils.JWTClaims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("claims not found in context")
	}
	return claims, nil
}
