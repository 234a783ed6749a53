// config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Configuration constants for the application
var (
	// MongoDB configuration
	MongoURI      string
	MongoDatabase string

	// Redis configuration
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// SMTP configuration for transactional email
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	// Razorpay configuration
	RazorpayKeyID  string
	RazorpaySecret string

	// ServerPort is the port on which the server will run
	ServerPort int

	// Application configuration
	AppName    = "CODEMATE"
	AppVersion = "1.0.0"
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
	}

	// MongoDB configuration
	MongoURI = getEnv("MONGODB_URI", "mongodb://localhost:27017")
	MongoDatabase = getEnv("MONGODB_DATABASE", "codemate")

	// Server configuration
	portStr := getEnv("SERVER_PORT", "5000")
	if port, err := strconv.Atoi(portStr); err == nil {
		ServerPort = port
	} else {
		ServerPort = 5000
	}

	// Redis configuration
	RedisURL = getEnv("REDIS_URL", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	redisDBStr := getEnv("REDIS_DB", "0")
	if db, err := strconv.Atoi(redisDBStr); err == nil {
		RedisDB = db
	} else {
		RedisDB = 0
	}

	// JWT configuration
	JWTSecret = getEnv("JWT_SECRET", "your_jwt_secret_key_here")

	// SMTP configuration
	SMTPHost = getEnv("SMTP_HOST", "localhost")
	smtpPortStr := getEnv("SMTP_PORT", "587")
	if port, err := strconv.Atoi(smtpPortStr); err == nil {
		SMTPPort = port
	} else {
		SMTPPort = 587
	}
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")

	// Razorpay configuration
	RazorpayKeyID = getEnv("RAZORPAY_KEY_ID", "")
	RazorpaySecret = getEnv("RAZORPAY_SECRET", "")
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
