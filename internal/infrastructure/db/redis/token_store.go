package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// TokenStore keeps anti-forgery tokens in Redis.
// Key format: antiforgery:<session_id>
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Save stores token for the session; it expires after ttl.
func (s *TokenStore) Save(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(sessionID), token, ttl).Err(); err != nil {
		return fmt.Errorf("save anti-forgery token: %w", err)
	}
	return nil
}

func (s *TokenStore) Load(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load anti-forgery token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete anti-forgery token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(sessionID string) string {
	return "antiforgery:" + sessionID
}
