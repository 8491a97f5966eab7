package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// seedActor is the principal sample products are written as.
const seedActor = "system:seed"

// SampleProducts is the starter catalog written into an empty store.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{Name: "Kayak", Description: "A boat for one person", Category: "Watersports", Price: decimal.NewFromInt(275)},
		{Name: "Lifejacket", Description: "Protective and fashionable", Category: "Watersports", Price: decimal.RequireFromString("48.95")},
		{Name: "Soccer Ball", Description: "FIFA-approved size and weight", Category: "Soccer", Price: decimal.RequireFromString("19.50")},
	}
}

// SeedCatalog inserts products when the catalog is empty and reports how many
// were written. A non-empty catalog is left alone.
func SeedCatalog(ctx context.Context, repo *CatalogRepository, products []domain.Product, logger zerolog.Logger) (int, error) {
	total, err := repo.Count(ctx, ports.ListFilter{})
	if err != nil {
		return 0, err
	}
	if total > 0 {
		logger.Debug().Int64("products", total).Msg("catalog already populated, seeding skipped")
		return 0, nil
	}

	seeder := domain.NewPrincipal(seedActor, "", domain.RoleProductManagement)
	if err := domain.Require(seeder, domain.OpCreate); err != nil {
		return 0, err
	}

	written := 0
	for _, p := range products {
		p.ID = 0
		if _, _, err := repo.Save(ctx, p); err != nil {
			return written, fmt.Errorf("seed %q: %w", p.Name, err)
		}
		written++
	}
	logger.Info().Int("products", written).Msg("catalog seeded")
	return written, nil
}
