package service

import (
	"context"
	"strings"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// CatalogService serves the public catalog browse path.
type CatalogService struct {
	repo     *CatalogRepository
	pageSize int
}

// NewCatalogService falls back to domain.DefaultPageSize when pageSize <= 0.
func NewCatalogService(repo *CatalogRepository, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &CatalogService{repo: repo, pageSize: pageSize}
}

// Browse returns one page of the (optionally category-filtered) catalog.
func (s *CatalogService) Browse(ctx context.Context, input ports.BrowseInput) (*ports.BrowseResult, error) {
	filter := ports.ListFilter{Category: strings.TrimSpace(input.Category)}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	window, info := domain.Paginate(items, total, input.Page, s.pageSize)
	return &ports.BrowseResult{
		Products: window,
		Paging:   info,
		Category: filter.Category,
	}, nil
}
