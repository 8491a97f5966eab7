package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// IdentityStore implements ports.IdentityStore. Emails match case-insensitively.
type IdentityStore struct {
	mu       sync.Mutex
	roles    map[string]struct{}
	accounts map[string]domain.AdminAccount
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		roles:    make(map[string]struct{}),
		accounts: make(map[string]domain.AdminAccount),
	}
}

func (s *IdentityStore) EnsureRole(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[name]; ok {
		return false, nil
	}
	s.roles[name] = struct{}{}
	return true, nil
}

func (s *IdentityStore) EnsureAccount(_ context.Context, account domain.AdminAccount) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(account.Email)
	if _, ok := s.accounts[key]; ok {
		return false, nil
	}
	account.ID = strconv.Itoa(len(s.accounts) + 1)
	account.Roles = append([]string(nil), account.Roles...)
	s.accounts[key] = account
	return true, nil
}

func (s *IdentityStore) FindByEmail(_ context.Context, email string) (*domain.AdminAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Roles = append([]string(nil), a.Roles...)
	return &a, nil
}
