package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionDenylist records signed-out sessions in Redis.
// Key format: session:revoked:<session_id>
type SessionDenylist struct {
	client *redis.Client
}

func NewSessionDenylist(client *redis.Client) *SessionDenylist {
	return &SessionDenylist{client: client}
}

// Revoke marks the session as signed out for ttl.
func (d *SessionDenylist) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(sessionID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (d *SessionDenylist) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

func (d *SessionDenylist) key(sessionID string) string {
	return "session:revoked:" + sessionID
}
