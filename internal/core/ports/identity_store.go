package ports

import (
	"context"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// IdentityStore is the contract of the external identity collaborator.
// EnsureRole and EnsureAccount are insert-if-absent: they never modify an
// existing record and report whether they created one.
type IdentityStore interface {
	EnsureRole(ctx context.Context, name string) (bool, error)
	EnsureAccount(ctx context.Context, account domain.AdminAccount) (bool, error)
	// FindByEmail returns domain.ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
}
