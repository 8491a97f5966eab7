package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

func newTestAuthService(t *testing.T) (*AuthService, *stubTokenStore, *stubDenylist) {
	t.Helper()
	identities := newStubIdentityStore()
	b := NewIdentityBootstrapper(identities, DefaultBootstrapConfig(""), BcryptHasher(bcrypt.MinCost), zerolog.Nop())
	if err := b.EnsurePopulated(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	tokens := newStubTokenStore()
	guard := NewAntiForgeryGuard(tokens, AntiForgeryConfig{Enforced: true}, zerolog.Nop())
	sessions := &stubDenylist{revoked: make(map[string]time.Duration)}
	return NewAuthService(identities, sessions, guard, "secret", time.Hour), tokens, sessions
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	token, principal, err := svc.Login(context.Background(), "adminRole@test.com", DefaultBootstrapPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if !principal.HasRole(domain.RoleProductManagement) || principal.SessionID == "" {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "adminRole@test.com" {
		t.Fatalf("unexpected sub claim: %v", claims["sub"])
	}
	if claims["sid"] != principal.SessionID {
		t.Fatalf("expected sid %s, got %v", principal.SessionID, claims["sid"])
	}
	roles, ok := claims["roles"].([]interface{})
	if !ok || len(roles) != 1 || roles[0] != domain.RoleProductManagement {
		t.Fatalf("unexpected roles claim: %v", claims["roles"])
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	cases := map[string][2]string{
		"empty email":    {"", "pass"},
		"empty password": {"admin@test.com", ""},
		"wrong password": {"admin@test.com", "badpass"},
		"unknown":        {"ghost@test.com", DefaultBootstrapPassword},
	}
	for name, c := range cases {
		if _, p, err := svc.Login(context.Background(), c[0], c[1]); err != domain.ErrInvalidCredentials || p.IsAuthenticated() {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", name, err)
		}
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, tokens, _ := newTestAuthService(t)

	_, principal, err := svc.Login(context.Background(), "admin@test.com", DefaultBootstrapPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	tokens.tokens[principal.SessionID] = "token"

	if err := svc.Logout(context.Background(), principal); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := tokens.tokens[principal.SessionID]; ok {
		t.Fatalf("expected session token to be removed")
	}
}

func TestAuthService_LogoutDenylistsSession(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	_, principal, err := svc.Login(ctx, "adminRole@test.com", DefaultBootstrapPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if revoked, _ := svc.IsRevoked(ctx, principal.SessionID); revoked {
		t.Fatalf("fresh session must not be revoked")
	}

	if err := svc.Logout(ctx, principal); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if ttl := sessions.revoked[principal.SessionID]; ttl != time.Hour {
		t.Fatalf("expected the session denylisted for the token lifetime, got %v", ttl)
	}
	if revoked, err := svc.IsRevoked(ctx, principal.SessionID); err != nil || !revoked {
		t.Fatalf("expected revoked session, got %v %v", revoked, err)
	}
}

func TestAuthService_LogoutStopsOnDenylistError(t *testing.T) {
	svc, tokens, sessions := newTestAuthService(t)
	ctx := context.Background()
	sessions.err = errors.New("redis down")

	_, principal, err := svc.Login(ctx, "admin@test.com", DefaultBootstrapPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	tokens.tokens[principal.SessionID] = "token"

	if err := svc.Logout(ctx, principal); !errors.Is(err, sessions.err) {
		t.Fatalf("expected denylist error, got %v", err)
	}
	if _, ok := tokens.tokens[principal.SessionID]; !ok {
		t.Fatalf("anti-forgery token must survive a failed logout")
	}
}
