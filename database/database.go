package database

import (
	"codemate/config"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	// MongoClient is the shared MongoDB client instance
	MongoClient *mongo.Client

	// MongoDatabase is the application database handle
	MongoDatabase *mongo.Database
)

// InitDB initializes the MongoDB connection and bootstraps indexes
func InitDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.MongoURI).
		SetMaxPoolSize(50).
		SetConnectTimeout(10 * time.Second)

	log.Printf("🔌 Connecting to MongoDB at %s...", config.MongoURI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	// Test the connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	MongoDatabase = client.Database(config.MongoDatabase)

	if err := ensureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %v", err)
	}

	log.Printf("✅ MongoDB connection initialized successfully")
	log.Printf("📊 Connected to database: %s", config.MongoDatabase)

	return nil
}

// ensureIndexes creates the unique indexes the application relies on.
// The pair_key indexes turn the check-then-insert sequences on requests
// and chats into atomic operations: a concurrent duplicate insert fails
// with a duplicate key error instead of producing a second document.
func ensureIndexes(ctx context.Context) error {
	_, err := UsersCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = RequestsCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pair_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = ChatsCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pair_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// UsersCollection returns the users collection
func UsersCollection() *mongo.Collection {
	return MongoDatabase.Collection("users")
}

// RequestsCollection returns the connection requests collection
func RequestsCollection() *mongo.Collection {
	return MongoDatabase.Collection("connectionrequests")
}

// ChatsCollection returns the chats collection
func ChatsCollection() *mongo.Collection {
	return MongoDatabase.Collection("chats")
}

// PaymentsCollection returns the payments collection
func PaymentsCollection() *mongo.Collection {
	return MongoDatabase.Collection("payments")
}

// CloseAllConnections closes the MongoDB connection
func CloseAllConnections() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("❌ Error closing MongoDB connection: %v", err)
			return
		}
		log.Println("✅ MongoDB connection closed")
	}
}

// HealthCheck performs a health check on the database
func HealthCheck() error {
	if MongoClient == nil {
		return fmt.Errorf("MongoDB client is not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return MongoClient.Ping(ctx, readpref.Primary())
}
