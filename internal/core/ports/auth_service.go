package ports

import (
	"context"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// AuthService signs principals in and out.
type AuthService interface {
	// Login checks the credentials and returns a signed token for the principal.
	Login(ctx context.Context, email, password string) (string, domain.Principal, error)
	Logout(ctx context.Context, principal domain.Principal) error
	// IsRevoked reports whether a session id was signed out before its token expired.
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
