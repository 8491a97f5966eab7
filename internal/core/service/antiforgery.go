package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/pkg/metrics"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

const tokenBytes = 32

// AntiForgeryConfig controls token lifetime and whether verification runs.
type AntiForgeryConfig struct {
	Enforced bool
	TTL      time.Duration
}

// TokenPair is what a rendered form needs: the cookie value and the value
// embedded in the form. Both carry the same token (double-submit).
type TokenPair struct {
	CookieToken string
	FormToken   string
}

// VerifyRequest is the anti-forgery evidence of one mutating request.
type VerifyRequest struct {
	Method         string
	SessionID      string
	CookieToken    string
	SubmittedToken string
}

// AntiForgeryGuard issues and verifies per-session anti-forgery tokens.
type AntiForgeryGuard struct {
	store  ports.TokenStore
	cfg    AntiForgeryConfig
	random io.Reader
	logger zerolog.Logger
}

func NewAntiForgeryGuard(store ports.TokenStore, cfg AntiForgeryConfig, logger zerolog.Logger) *AntiForgeryGuard {
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Hour
	}
	return &AntiForgeryGuard{store: store, cfg: cfg, random: rand.Reader, logger: logger}
}

// Enforced reports whether Verify is applied to mutating requests.
func (g *AntiForgeryGuard) Enforced() bool { return g.cfg.Enforced }

// Issue returns the session's token, generating and storing a fresh one when
// the session has none. The stored TTL is refreshed on every call.
func (g *AntiForgeryGuard) Issue(ctx context.Context, sessionID string) (TokenPair, error) {
	if sessionID == "" {
		return TokenPair{}, errors.New("issue anti-forgery token: missing session")
	}

	token, err := g.store.Load(ctx, sessionID)
	if errors.Is(err, domain.ErrTokenNotFound) {
		token, err = g.generate()
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue anti-forgery token: %w", err)
	}

	if err := g.store.Save(ctx, sessionID, token, g.cfg.TTL); err != nil {
		return TokenPair{}, fmt.Errorf("issue anti-forgery token: %w", err)
	}
	return TokenPair{CookieToken: token, FormToken: token}, nil
}

// Verify accepts a request only when it is a mutating method, the session
// holds a token and both the cookie and the submitted value equal it.
func (g *AntiForgeryGuard) Verify(ctx context.Context, req VerifyRequest) error {
	if isSafeMethod(req.Method) {
		return g.reject("safe_method", req.SessionID)
	}
	if req.SessionID == "" {
		return g.reject("missing_session", req.SessionID)
	}
	if req.CookieToken == "" || req.SubmittedToken == "" {
		return g.reject("missing_token", req.SessionID)
	}

	stored, err := g.store.Load(ctx, req.SessionID)
	if errors.Is(err, domain.ErrTokenNotFound) {
		return g.reject("no_token", req.SessionID)
	}
	if err != nil {
		g.logger.Error().Err(err).Str("session_id", req.SessionID).Msg("anti-forgery token lookup failed")
		metrics.AntiForgeryRejectionsTotal.WithLabelValues("store_error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrAntiForgeryRejected, err)
	}

	if !equalTokens(stored, req.CookieToken) || !equalTokens(req.CookieToken, req.SubmittedToken) {
		return g.reject("mismatch", req.SessionID)
	}
	return nil
}

// Revoke drops the session's token, e.g. on logout.
func (g *AntiForgeryGuard) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := g.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke anti-forgery token: %w", err)
	}
	return nil
}

func (g *AntiForgeryGuard) generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (g *AntiForgeryGuard) reject(reason, sessionID string) error {
	metrics.AntiForgeryRejectionsTotal.WithLabelValues(reason).Inc()
	g.logger.Warn().Str("reason", reason).Str("session_id", sessionID).Msg("anti-forgery token rejected")
	return fmt.Errorf("%w: %s", domain.ErrAntiForgeryRejected, reason)
}

func equalTokens(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, "":
		return true
	}
	return false
}
