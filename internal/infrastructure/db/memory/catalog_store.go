// Package memory holds process-local adapters for every store port. They back
// STORE_DRIVER=memory and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// CatalogStore implements ports.CatalogStore on a guarded map.
type CatalogStore struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
	lastID   int64
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{products: make(map[int64]domain.Product)}
}

func (s *CatalogStore) List(_ context.Context, f ports.ListFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Category == "" || p.Category == f.Category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CatalogStore) Count(_ context.Context, f ports.ListFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f.Category == "" {
		return int64(len(s.products)), nil
	}
	var n int64
	for _, p := range s.products {
		if p.Category == f.Category {
			n++
		}
	}
	return n, nil
}

func (s *CatalogStore) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (s *CatalogStore) Insert(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	p.ID = s.lastID
	s.products[p.ID] = *p
	return nil
}

func (s *CatalogStore) Update(_ context.Context, p domain.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return false, nil
	}
	s.products[p.ID] = p
	return true, nil
}

func (s *CatalogStore) Delete(_ context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	delete(s.products, id)
	return &p, nil
}
