package redis

import (
	"codemate/config"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Service handles all Redis-related operations: revoked-token lookups
// for logout and online-presence tracking for the realtime layer.
type Service struct {
	client *redis.Client
	ctx    context.Context
}

// NewService creates a new Redis service instance
func NewService() *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisURL,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
		// Connection pool settings
		PoolSize:     10,
		MinIdleConns: 5,
		// Timeout settings
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx := context.Background()

	// Test the connection
	_, err := client.Ping(ctx).Result()
	if err != nil {
		// Silent fail - Redis might not be available
	}

	return &Service{
		client: client,
		ctx:    ctx,
	}
}

// Close closes the Redis connection
func (r *Service) Close() error {
	return r.client.Close()
}

// GetClient returns the underlying Redis client
func (r *Service) GetClient() *redis.Client {
	return r.client
}

// GetContext returns the service context
func (r *Service) GetContext() context.Context {
	return r.ctx
}

// RevokeToken stores a logged-out token until its natural expiry
func (r *Service) RevokeToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	err := r.client.Set(r.ctx, revokedKey(token), "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to revoke token: %v", err)
	}
	return nil
}

// IsTokenRevoked checks whether a token was invalidated by logout
func (r *Service) IsTokenRevoked(token string) (bool, error) {
	result, err := r.client.Exists(r.ctx, revokedKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %v", err)
	}
	return result > 0, nil
}

// SetOnline marks a user as online with a liveness TTL. The socket
// layer refreshes the key on join and clears it on disconnect.
func (r *Service) SetOnline(userID string) error {
	err := r.client.Set(r.ctx, presenceKey(userID), "1", 2*time.Hour).Err()
	if err != nil {
		return fmt.Errorf("failed to set presence for %s: %v", userID, err)
	}
	return nil
}

// SetOffline clears a user's presence key
func (r *Service) SetOffline(userID string) error {
	err := r.client.Del(r.ctx, presenceKey(userID)).Err()
	if err != nil {
		return fmt.Errorf("failed to clear presence for %s: %v", userID, err)
	}
	return nil
}

// IsOnline reports whether a user currently has a live presence key
func (r *Service) IsOnline(userID string) (bool, error) {
	result, err := r.client.Exists(r.ctx, presenceKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence for %s: %v", userID, err)
	}
	return result > 0, nil
}

func revokedKey(token string) string {
	return "revoked_token:" + token
}

func presenceKey(userID string) string {
	return "online:" + userID
}
