package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/pkg/metrics"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// SaveOutcome tells what a Save actually did to the store.
type SaveOutcome string

const (
	SaveInserted SaveOutcome = "inserted"
	SaveUpdated  SaveOutcome = "updated"
	SaveNoop     SaveOutcome = "noop"
)

// CatalogRepository is the typed façade over a CatalogStore. Writes are
// validated before the store is touched and are last-write-wins.
type CatalogRepository struct {
	store  ports.CatalogStore
	logger zerolog.Logger
}

func NewCatalogRepository(store ports.CatalogStore, logger zerolog.Logger) *CatalogRepository {
	return &CatalogRepository{store: store, logger: logger}
}

// List returns the products matching filter in ascending ID order.
func (r *CatalogRepository) List(ctx context.Context, filter ports.ListFilter) ([]domain.Product, error) {
	items, err := r.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *CatalogRepository) Count(ctx context.Context, filter ports.ListFilter) (int64, error) {
	n, err := r.store.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// FindByID returns nil without error when no product has id.
func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := r.store.FindByID(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}

// Save inserts p when its ID is 0 and otherwise overwrites the stored record
// in place. Updating a missing ID is a silent no-op reported as SaveNoop.
func (r *CatalogRepository) Save(ctx context.Context, p domain.Product) (domain.Product, SaveOutcome, error) {
	if err := domain.ValidateProduct(p); err != nil {
		return p, "", err
	}
	if err := ctx.Err(); err != nil {
		return p, "", fmt.Errorf("save product: %w", err)
	}

	if p.IsNew() {
		if err := r.store.Insert(ctx, &p); err != nil {
			return p, "", fmt.Errorf("insert product: %w", err)
		}
		metrics.ProductsSavedTotal.WithLabelValues(string(SaveInserted)).Inc()
		r.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product inserted")
		return p, SaveInserted, nil
	}

	found, err := r.store.Update(ctx, p)
	if err != nil {
		return p, "", fmt.Errorf("update product %d: %w", p.ID, err)
	}
	if !found {
		metrics.ProductsSavedTotal.WithLabelValues(string(SaveNoop)).Inc()
		r.logger.Warn().Int64("product_id", p.ID).Msg("update of missing product ignored")
		return p, SaveNoop, nil
	}

	metrics.ProductsSavedTotal.WithLabelValues(string(SaveUpdated)).Inc()
	r.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product updated")
	return p, SaveUpdated, nil
}

// Delete removes and returns the product with id, or returns nil when absent.
func (r *CatalogRepository) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}

	deleted, err := r.store.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete product %d: %w", id, err)
	}
	if deleted == nil {
		metrics.ProductsDeletedTotal.WithLabelValues("absent").Inc()
		return nil, nil
	}

	metrics.ProductsDeletedTotal.WithLabelValues("removed").Inc()
	r.logger.Info().Int64("product_id", id).Str("name", deleted.Name).Msg("product deleted")
	return deleted, nil
}
