package ports

import (
	"context"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// ListFilter narrows catalog reads. Empty fields do not filter.
type ListFilter struct {
	Category string
}

// CatalogStore is the persistence contract for products.
type CatalogStore interface {
	// List returns every product matching filter, ordered by ID ascending.
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	Count(ctx context.Context, filter ListFilter) (int64, error)
	// FindByID returns domain.ErrProductNotFound when no record has id.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// Insert assigns a new identity to p and stores it.
	Insert(ctx context.Context, p *domain.Product) error
	// Update overwrites the mutable fields of the record with p.ID and
	// reports whether such a record existed.
	Update(ctx context.Context, p domain.Product) (bool, error)
	// Delete removes and returns the record, or returns nil when absent.
	Delete(ctx context.Context, id int64) (*domain.Product, error)
}
