package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvcstore/catalog-admin/internal/pkg/metrics"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// DefaultBootstrapPassword is the well-known credential of the seeded accounts.
const DefaultBootstrapPassword = "Secret123$"

// BootstrapAccount describes one account the bootstrapper guarantees.
type BootstrapAccount struct {
	Email string
	Roles []string
}

// BootstrapConfig lists the identity records that must exist at start-up.
type BootstrapConfig struct {
	Roles    []string
	Accounts []BootstrapAccount
	Password string
}

// DefaultBootstrapConfig returns the ProductManagement role, an account
// without the role and an account holding it.
func DefaultBootstrapConfig(password string) BootstrapConfig {
	if password == "" {
		password = DefaultBootstrapPassword
	}
	return BootstrapConfig{
		Roles: []string{domain.RoleProductManagement},
		Accounts: []BootstrapAccount{
			{Email: "admin@test.com"},
			{Email: "adminRole@test.com", Roles: []string{domain.RoleProductManagement}},
		},
		Password: password,
	}
}

// PasswordHasher turns a plain credential into a storable hash.
type PasswordHasher func(password string) (string, error)

// BcryptHasher hashes with bcrypt at the given cost.
func BcryptHasher(cost int) PasswordHasher {
	return func(password string) (string, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", err
		}
		return string(hash), nil
	}
}

// IdentityBootstrapper makes sure the administration identities exist. It
// only ever adds records: existing roles and accounts are left untouched.
type IdentityBootstrapper struct {
	store  ports.IdentityStore
	cfg    BootstrapConfig
	hash   PasswordHasher
	now    func() time.Time
	logger zerolog.Logger

	mu sync.Mutex
}

func NewIdentityBootstrapper(store ports.IdentityStore, cfg BootstrapConfig, hash PasswordHasher, logger zerolog.Logger) *IdentityBootstrapper {
	if hash == nil {
		hash = BcryptHasher(bcrypt.DefaultCost)
	}
	return &IdentityBootstrapper{
		store:  store,
		cfg:    cfg,
		hash:   hash,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

// EnsurePopulated is idempotent. Concurrent calls in one process are
// serialised; across processes the store's insert-if-absent keeps it safe.
func (b *IdentityBootstrapper) EnsurePopulated(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, role := range b.cfg.Roles {
		created, err := b.store.EnsureRole(ctx, role)
		if err != nil {
			return fmt.Errorf("ensure role %q: %w", role, err)
		}
		if created {
			metrics.BootstrapCreatedTotal.WithLabelValues("role").Inc()
			b.logger.Info().Str("role", role).Msg("role created")
		}
	}

	for _, acc := range b.cfg.Accounts {
		hash, err := b.hash(b.cfg.Password)
		if err != nil {
			return fmt.Errorf("hash credential for %q: %w", acc.Email, err)
		}
		created, err := b.store.EnsureAccount(ctx, domain.AdminAccount{
			Email:        acc.Email,
			Roles:        append([]string(nil), acc.Roles...),
			PasswordHash: hash,
			CreatedAt:    b.now(),
		})
		if err != nil {
			return fmt.Errorf("ensure account %q: %w", acc.Email, err)
		}
		if created {
			metrics.BootstrapCreatedTotal.WithLabelValues("account").Inc()
			b.logger.Info().Str("email", acc.Email).Strs("roles", acc.Roles).Msg("account created")
		}
	}
	return nil
}
