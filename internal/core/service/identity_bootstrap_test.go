package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

func newTestBootstrapper(store *stubIdentityStore) *IdentityBootstrapper {
	return NewIdentityBootstrapper(store, DefaultBootstrapConfig(""), BcryptHasher(bcrypt.MinCost), zerolog.Nop())
}

func TestIdentityBootstrapper_CreatesDefaults(t *testing.T) {
	store := newStubIdentityStore()
	b := newTestBootstrapper(store)

	if err := b.EnsurePopulated(context.Background()); err != nil {
		t.Fatalf("EnsurePopulated returned error: %v", err)
	}

	if !store.roles[domain.RoleProductManagement] {
		t.Fatalf("expected role %s to exist", domain.RoleProductManagement)
	}

	plain, err := store.FindByEmail(context.Background(), "admin@test.com")
	if err != nil {
		t.Fatalf("admin@test.com missing: %v", err)
	}
	if len(plain.Roles) != 0 {
		t.Fatalf("admin@test.com must hold no roles, got %v", plain.Roles)
	}

	manager, err := store.FindByEmail(context.Background(), "adminRole@test.com")
	if err != nil {
		t.Fatalf("adminRole@test.com missing: %v", err)
	}
	if len(manager.Roles) != 1 || manager.Roles[0] != domain.RoleProductManagement {
		t.Fatalf("unexpected roles: %v", manager.Roles)
	}
	if bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(DefaultBootstrapPassword)) != nil {
		t.Fatalf("stored hash does not match the default credential")
	}
}

func TestIdentityBootstrapper_IsAdditiveOnly(t *testing.T) {
	store := newStubIdentityStore()
	store.accounts["adminrole@test.com"] = domain.AdminAccount{Email: "adminRole@test.com", PasswordHash: "custom"}

	b := newTestBootstrapper(store)
	for i := 0; i < 2; i++ {
		if err := b.EnsurePopulated(context.Background()); err != nil {
			t.Fatalf("run %d returned error: %v", i, err)
		}
	}

	existing, _ := store.FindByEmail(context.Background(), "adminRole@test.com")
	if existing.PasswordHash != "custom" || len(existing.Roles) != 0 {
		t.Fatalf("existing account was modified: %+v", existing)
	}
	if len(store.accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(store.accounts))
	}
}

func TestIdentityBootstrapper_Concurrent(t *testing.T) {
	store := newStubIdentityStore()
	b := newTestBootstrapper(store)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := b.EnsurePopulated(context.Background()); err != nil {
				t.Errorf("EnsurePopulated returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(store.roles) != 1 || len(store.accounts) != 2 {
		t.Fatalf("expected 1 role and 2 accounts, got %d and %d", len(store.roles), len(store.accounts))
	}
}
