// main.go
package main

import (
	"codemate/app/routes"
	"codemate/app/services"
	"codemate/config"
	"codemate/database"
	"codemate/redis"
	"codemate/sockets"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
)

func main() {
	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		ServerHeader:  "Fiber",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			ctx.Status(code)
			return ctx.JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Initialize database first
	fmt.Println("🔌 Initializing database connection...")
	if err := database.InitDB(); err != nil {
		log.Fatalf("❌ Failed to connect to the database: %v", err)
	}
	fmt.Println("✅ Database initialized successfully")

	// Initialize Redis (token revocation and presence)
	fmt.Println("🔌 Initializing Redis connection...")
	redisService := redis.NewService()
	fmt.Println("✅ Redis service initialized")

	// Initialize chat service for the realtime channel
	chatService := services.NewChatService(
		database.UsersCollection(),
		database.RequestsCollection(),
		database.ChatsCollection(),
	)

	// Initialize Socket.IO handler
	fmt.Println("🔌 Initializing Socket.IO handler...")
	socketHandler := sockets.NewSocketHandler(chatService, redisService)
	fmt.Println("✅ Socket.IO handler initialized")

	// Setup Socket.IO routes (this should be before regular routes)
	socketHandler.SetupSocketRoutes(app)

	// Initialize regular routes
	routes.SetupRoutes(app, redisService)

	// Start the daily pending-request reminder
	notificationService := services.NewNotificationService()
	cronService := services.NewCronService(
		database.UsersCollection(),
		database.RequestsCollection(),
		notificationService,
	)
	cronService.StartReminderCron()

	// Graceful shutdown on SIGINT/SIGTERM
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		fmt.Println("🛑 Shutting down server...")
		cronService.StopReminderCron()
		database.CloseAllConnections()
		_ = app.Shutdown()
	}()

	port := config.ServerPort
	fmt.Printf("🚀 Server starting on port :%d\n", port)
	fmt.Printf("🔌 Socket.IO server available at :%d/socket.io\n", port)

	log.Fatal(app.Listen(fmt.Sprintf(":%d", port)))
}
