package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// AuthService implements sign-in and sign-out for administration accounts.
type AuthService struct {
	identities ports.IdentityStore
	sessions   ports.SessionDenylist
	guard      *AntiForgeryGuard
	jwtSecret  string
	tokenTTL   time.Duration
}

// NewAuthService signs tokens valid for tokenTTL. A nil sessions denylist
// leaves signed-out tokens usable until they expire.
func NewAuthService(identities ports.IdentityStore, sessions ports.SessionDenylist, guard *AntiForgeryGuard, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{identities: identities, sessions: sessions, guard: guard, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login opens a new session. Unknown accounts and wrong passwords both
// yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", domain.Anonymous(), domain.ErrInvalidCredentials
	}

	account, err := s.identities.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return "", domain.Anonymous(), domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", domain.Anonymous(), err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.Anonymous(), domain.ErrInvalidCredentials
	}

	principal := domain.NewPrincipal(account.Email, uuid.NewString(), account.Roles...)
	token, err := s.generateToken(principal)
	if err != nil {
		return "", domain.Anonymous(), err
	}
	return token, principal, nil
}

// Logout ends the session: its id is denylisted for the remaining token
// lifetime and its anti-forgery token is dropped.
func (s *AuthService) Logout(ctx context.Context, principal domain.Principal) error {
	if !principal.IsAuthenticated() {
		return nil
	}
	if s.sessions != nil {
		if err := s.sessions.Revoke(ctx, principal.SessionID, s.tokenTTL); err != nil {
			return err
		}
	}
	if s.guard == nil {
		return nil
	}
	return s.guard.Revoke(ctx, principal.SessionID)
}

// IsRevoked reports whether the session was signed out.
func (s *AuthService) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	if s.sessions == nil || sessionID == "" {
		return false, nil
	}
	return s.sessions.IsRevoked(ctx, sessionID)
}

func (s *AuthService) generateToken(p domain.Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   p.Identifier,
		"sid":   p.SessionID,
		"roles": p.Roles(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
