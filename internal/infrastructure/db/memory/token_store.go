package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

type tokenEntry struct {
	token     string
	expiresAt time.Time
}

// TokenStore implements ports.TokenStore. Expired entries are dropped lazily.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]tokenEntry
	now    func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]tokenEntry), now: time.Now}
}

func (s *TokenStore) Save(_ context.Context, sessionID, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[sessionID] = tokenEntry{token: token, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *TokenStore) Load(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.tokens[sessionID]
	if !ok {
		return "", domain.ErrTokenNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.tokens, sessionID)
		return "", domain.ErrTokenNotFound
	}
	return e.token, nil
}

func (s *TokenStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, sessionID)
	return nil
}
