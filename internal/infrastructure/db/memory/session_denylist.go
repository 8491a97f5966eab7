package memory

import (
	"context"
	"sync"
	"time"
)

// SessionDenylist implements ports.SessionDenylist with lazy expiry.
type SessionDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewSessionDenylist() *SessionDenylist {
	return &SessionDenylist{revoked: make(map[string]time.Time), now: time.Now}
}

func (d *SessionDenylist) Revoke(_ context.Context, sessionID string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.revoked[sessionID] = d.now().Add(ttl)
	return nil
}

func (d *SessionDenylist) IsRevoked(_ context.Context, sessionID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	until, ok := d.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if !d.now().Before(until) {
		delete(d.revoked, sessionID)
		return false, nil
	}
	return true, nil
}
