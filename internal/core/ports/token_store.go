package ports

import (
	"context"
	"time"
)

// TokenStore keeps the server-side half of anti-forgery tokens, keyed by session.
type TokenStore interface {
	Save(ctx context.Context, sessionID, token string, ttl time.Duration) error
	// Load returns domain.ErrTokenNotFound when the session has no token.
	Load(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionDenylist remembers signed-out session ids until their bearer tokens
// would have expired anyway.
type SessionDenylist interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
