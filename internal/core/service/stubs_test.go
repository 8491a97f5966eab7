package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// ── Catalog store stub ────────────────────────────────────────────────────────

type stubCatalogStore struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	nextID   int64
	writes   int
	err      error
}

func newStubCatalogStore(seed ...domain.Product) *stubCatalogStore {
	s := &stubCatalogStore{products: make(map[int64]domain.Product)}
	for _, p := range seed {
		s.products[p.ID] = p
		if p.ID > s.nextID {
			s.nextID = p.ID
		}
	}
	return s
}

func (s *stubCatalogStore) List(_ context.Context, filter ports.ListFilter) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if filter.Category == "" || p.Category == filter.Category {
			out = append(out, p)
		}
	}
	// Deliberately unordered input for the repository to sort.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *stubCatalogStore) Count(ctx context.Context, filter ports.ListFilter) (int64, error) {
	items, err := s.List(ctx, filter)
	return int64(len(items)), err
}

func (s *stubCatalogStore) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (s *stubCatalogStore) Insert(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	p.ID = s.nextID
	s.products[p.ID] = *p
	s.writes++
	return nil
}

func (s *stubCatalogStore) Update(_ context.Context, p domain.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return false, nil
	}
	s.products[p.ID] = p
	s.writes++
	return true, nil
}

func (s *stubCatalogStore) Delete(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	delete(s.products, id)
	s.writes++
	return &p, nil
}

// ── Identity store stub ───────────────────────────────────────────────────────

type stubIdentityStore struct {
	mu       sync.Mutex
	roles    map[string]bool
	accounts map[string]domain.AdminAccount
}

func newStubIdentityStore() *stubIdentityStore {
	return &stubIdentityStore{roles: make(map[string]bool), accounts: make(map[string]domain.AdminAccount)}
}

func (s *stubIdentityStore) EnsureRole(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roles[name] {
		return false, nil
	}
	s.roles[name] = true
	return true, nil
}

func (s *stubIdentityStore) EnsureAccount(_ context.Context, account domain.AdminAccount) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(account.Email)
	if _, ok := s.accounts[key]; ok {
		return false, nil
	}
	s.accounts[key] = account
	return true, nil
}

func (s *stubIdentityStore) FindByEmail(_ context.Context, email string) (*domain.AdminAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &a, nil
}

// ── Token store stub ──────────────────────────────────────────────────────────

type stubTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (s *stubTokenStore) Save(_ context.Context, sid, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.tokens[sid] = token
	s.ttls[sid] = ttl
	return nil
}

func (s *stubTokenStore) Load(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	t, ok := s.tokens[sid]
	if !ok {
		return "", domain.ErrTokenNotFound
	}
	return t, nil
}

func (s *stubTokenStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sid)
	return nil
}

// ── Audit stubs ───────────────────────────────────────────────────────────────

type recordingSink struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingSink) Enqueue(e domain.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

func (r *recordingSink) all() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEntry(nil), r.entries...)
}

type stubAuditRepo struct {
	entries []domain.AuditEntry
	err     error
}

func (r *stubAuditRepo) Insert(_ context.Context, e domain.AuditEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

var errStore = errors.New("store unavailable")

type stubDenylist struct {
	revoked map[string]time.Duration
	err     error
}

func (s *stubDenylist) Revoke(_ context.Context, sid string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[sid] = ttl
	return nil
}

func (s *stubDenylist) IsRevoked(_ context.Context, sid string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[sid]
	return ok, nil
}
