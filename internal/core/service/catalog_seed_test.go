package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

func TestSeedCatalog_EmptyStore(t *testing.T) {
	repo := NewCatalogRepository(newStubCatalogStore(), zerolog.Nop())

	n, err := SeedCatalog(context.Background(), repo, SampleProducts(), zerolog.Nop())
	if err != nil {
		t.Fatalf("SeedCatalog returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 seeded products, got %d", n)
	}

	items, _ := repo.List(context.Background(), ports.ListFilter{Category: "Watersports"})
	if len(items) != 2 || items[0].Name != "Kayak" {
		t.Fatalf("unexpected watersports products: %+v", items)
	}
}

func TestSeedCatalog_PopulatedStoreUntouched(t *testing.T) {
	store := newStubCatalogStore(product(1, "Existing", "x", "1"))
	repo := NewCatalogRepository(store, zerolog.Nop())

	n, err := SeedCatalog(context.Background(), repo, SampleProducts(), zerolog.Nop())
	if err != nil || n != 0 {
		t.Fatalf("expected no seeding, got %d / %v", n, err)
	}
	if store.writes != 0 {
		t.Fatalf("expected no writes, got %d", store.writes)
	}
}
