package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

func newTestGuard(store *stubTokenStore) *AntiForgeryGuard {
	return NewAntiForgeryGuard(store, AntiForgeryConfig{Enforced: true, TTL: time.Minute}, zerolog.Nop())
}

func TestAntiForgeryGuard_IssueThenVerify(t *testing.T) {
	store := newStubTokenStore()
	guard := newTestGuard(store)

	pair, err := guard.Issue(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if pair.CookieToken == "" || pair.CookieToken != pair.FormToken {
		t.Fatalf("unexpected token pair: %+v", pair)
	}
	if store.ttls["sid-1"] != time.Minute {
		t.Fatalf("expected ttl %s, got %s", time.Minute, store.ttls["sid-1"])
	}

	err = guard.Verify(context.Background(), VerifyRequest{
		Method:         http.MethodPost,
		SessionID:      "sid-1",
		CookieToken:    pair.CookieToken,
		SubmittedToken: pair.FormToken,
	})
	if err != nil {
		t.Fatalf("expected accept, got %v", err)
	}
}

func TestAntiForgeryGuard_IssueReusesSessionToken(t *testing.T) {
	guard := newTestGuard(newStubTokenStore())

	first, _ := guard.Issue(context.Background(), "sid-1")
	second, _ := guard.Issue(context.Background(), "sid-1")
	if first.CookieToken != second.CookieToken {
		t.Fatalf("expected the session token to be reused")
	}

	other, _ := guard.Issue(context.Background(), "sid-2")
	if other.CookieToken == first.CookieToken {
		t.Fatalf("expected distinct tokens for distinct sessions")
	}
}

func TestAntiForgeryGuard_IssueRequiresSession(t *testing.T) {
	guard := newTestGuard(newStubTokenStore())
	if _, err := guard.Issue(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty session id")
	}
}

func TestAntiForgeryGuard_VerifyRejects(t *testing.T) {
	store := newStubTokenStore()
	guard := newTestGuard(store)
	pair, _ := guard.Issue(context.Background(), "sid-1")
	other, _ := guard.Issue(context.Background(), "sid-2")

	tests := []struct {
		name string
		req  VerifyRequest
	}{
		{"safe method", VerifyRequest{Method: http.MethodGet, SessionID: "sid-1", CookieToken: pair.CookieToken, SubmittedToken: pair.FormToken}},
		{"missing session", VerifyRequest{Method: http.MethodPost, CookieToken: pair.CookieToken, SubmittedToken: pair.FormToken}},
		{"missing submitted token", VerifyRequest{Method: http.MethodPost, SessionID: "sid-1", CookieToken: pair.CookieToken}},
		{"missing cookie", VerifyRequest{Method: http.MethodPost, SessionID: "sid-1", SubmittedToken: pair.FormToken}},
		{"session without token", VerifyRequest{Method: http.MethodPost, SessionID: "sid-3", CookieToken: pair.CookieToken, SubmittedToken: pair.FormToken}},
		{"token of another session", VerifyRequest{Method: http.MethodPost, SessionID: "sid-1", CookieToken: other.CookieToken, SubmittedToken: other.FormToken}},
		{"cookie and form differ", VerifyRequest{Method: http.MethodPost, SessionID: "sid-1", CookieToken: pair.CookieToken, SubmittedToken: "forged"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := guard.Verify(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrAntiForgeryRejected) {
				t.Fatalf("expected ErrAntiForgeryRejected, got %v", err)
			}
		})
	}
}

func TestAntiForgeryGuard_StoreFailureRejects(t *testing.T) {
	store := newStubTokenStore()
	guard := newTestGuard(store)
	store.err = errStore

	err := guard.Verify(context.Background(), VerifyRequest{
		Method: http.MethodPost, SessionID: "sid-1", CookieToken: "a", SubmittedToken: "a",
	})
	if !errors.Is(err, domain.ErrAntiForgeryRejected) {
		t.Fatalf("expected ErrAntiForgeryRejected, got %v", err)
	}
}

func TestAntiForgeryGuard_RevokeInvalidatesToken(t *testing.T) {
	guard := newTestGuard(newStubTokenStore())
	pair, _ := guard.Issue(context.Background(), "sid-1")

	if err := guard.Revoke(context.Background(), "sid-1"); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	err := guard.Verify(context.Background(), VerifyRequest{
		Method: http.MethodPost, SessionID: "sid-1", CookieToken: pair.CookieToken, SubmittedToken: pair.FormToken,
	})
	if !errors.Is(err, domain.ErrAntiForgeryRejected) {
		t.Fatalf("expected rejection after revoke, got %v", err)
	}
}
