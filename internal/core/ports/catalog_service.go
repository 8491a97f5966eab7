package ports

import (
	"context"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// BrowseInput carries the public catalog query.
type BrowseInput struct {
	Page     int
	Category string
}

// BrowseResult is one page of the public catalog.
type BrowseResult struct {
	Products []domain.Product
	Paging   domain.PagingInfo
	Category string
}

// CatalogBrowser serves the public, paginated catalog.
type CatalogBrowser interface {
	Browse(ctx context.Context, input BrowseInput) (*BrowseResult, error)
}
