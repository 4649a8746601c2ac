package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/givehope/backend/internal/domain/cart"
	"github.com/givehope/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "cart:session:"

// RedisCartStore implements cart.SessionStore on Redis. Guest carts are
// JSON documents keyed by the cookie session id, expiring after the
// configured TTL. A missing key reads as an empty cart.
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisCartStore creates a Redis-backed guest cart store
func NewRedisCartStore(redisCfg config.RedisConfig, sessionCfg config.SessionConfig) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.RedisAddr(),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCartStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       sessionCfg.TTL,
	}, nil
}

// NewRedisCartStoreWithClient creates a store with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisCartStoreWithClient(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		ttl:       ttl,
	}
}

// Get returns the guest cart for a session id; a missing key is an empty cart
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (cart.Cart, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.Cart{}, nil
		}
		return nil, fmt.Errorf("failed to read session cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("corrupt session cart document: %w", err)
	}
	return c, nil
}

// Put replaces the guest cart, refreshing the session TTL
func (s *RedisCartStore) Put(ctx context.Context, sessionID string, c cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session cart: %w", err)
	}
	return nil
}

// Clear removes the guest cart
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear session cart: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}

// Ensure RedisCartStore implements cart.SessionStore
var _ cart.SessionStore = (*RedisCartStore)(nil)
