// app/routes/routes.go
package routes

import (
	"codemate/app/controllers"
	"codemate/app/middlewares"
	"codemate/app/services"
	"codemate/config"
	"codemate/database"
	"codemate/redis"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires the HTTP surface onto the Fiber app
func SetupRoutes(app *fiber.App, redisService *redis.Service) {
	usersCollection := database.UsersCollection()
	requestsCollection := database.RequestsCollection()
	chatsCollection := database.ChatsCollection()
	paymentsCollection := database.PaymentsCollection()

	notificationService := services.NewNotificationService()
	requestService := services.NewRequestService(usersCollection, requestsCollection, notificationService)
	chatService := services.NewChatService(usersCollection, requestsCollection, chatsCollection)
	paymentService := services.NewPaymentService(paymentsCollection)

	authController := controllers.NewAuthController(usersCollection, redisService, notificationService)
	profileController := controllers.NewProfileController(usersCollection)
	requestController := controllers.NewRequestController(requestService)
	userController := controllers.NewUserController(requestService)
	chatController := controllers.NewChatController(chatService)
	paymentController := controllers.NewPaymentController(paymentService)

	auth := middlewares.JWTMiddleware(usersCollection, redisService)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		health := map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services":  map[string]string{},
		}

		// Check MongoDB connection
		if err := database.HealthCheck(); err != nil {
			health["services"].(map[string]string)["mongodb"] = "error: " + err.Error()
		} else {
			health["services"].(map[string]string)["mongodb"] = "ok"
		}

		// Check Redis connection
		if _, err := redisService.GetClient().Ping(redisService.GetContext()).Result(); err != nil {
			health["services"].(map[string]string)["redis"] = "error: " + err.Error()
		} else {
			health["services"].(map[string]string)["redis"] = "ok"
		}

		return c.JSON(health)
	})

	// API version endpoint
	app.Get("/api/version", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"version":   config.AppVersion,
			"name":      config.AppName,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth routes
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authController.Register)
	authGroup.Post("/login", authController.Login)
	authGroup.Post("/logout", auth, authController.Logout)

	// Profile routes. The group root is registered with an empty path:
	// under strict routing "/" would map to /api/profile/ only, leaving
	// /api/profile itself unreachable.
	profileGroup := app.Group("/api/profile")
	profileGroup.Get("/:userId", profileController.GetUserByID)
	profileGroup.Get("", auth, profileController.GetProfile)
	profileGroup.Patch("", auth, profileController.UpdateProfile)
	profileGroup.Post("/change-password", auth, profileController.ChangePassword)

	// Connection request routes
	requestGroup := app.Group("/api/request", auth)
	requestGroup.Post("/send/:status/:toUserId", requestController.SendRequest)
	requestGroup.Post("/review/:status/:requestId", requestController.ReviewRequest)

	// User listing routes
	userGroup := app.Group("/api/user", auth)
	userGroup.Get("/requests/received", userController.GetReceivedRequests)
	userGroup.Get("/connections", userController.GetConnections)
	userGroup.Get("/feed", userController.GetFeed)

	// Chat routes
	chatGroup := app.Group("/api/chat", auth)
	chatGroup.Get("/:targetUserId", chatController.GetChat)

	// Payment routes
	paymentGroup := app.Group("/api/payment", auth)
	paymentGroup.Post("/create", paymentController.CreatePayment)
}
