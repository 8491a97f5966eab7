package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mvcstore/catalog-admin/internal/api/middleware"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
	"github.com/mvcstore/catalog-admin/internal/core/service"
)

// stubWorkflow implements only the mutations the tests reach.
type stubWorkflow struct {
	ports.AdminWorkflow
	submitFn func(ctx context.Context, principal domain.Principal, in ports.SubmitInput) (*ports.SubmitResult, *ports.EditView, error)
	deleteFn func(ctx context.Context, principal domain.Principal, in ports.DeleteInput) (*ports.DeleteResult, error)
}

func (s *stubWorkflow) Submit(ctx context.Context, principal domain.Principal, in ports.SubmitInput) (*ports.SubmitResult, *ports.EditView, error) {
	return s.submitFn(ctx, principal, in)
}

func (s *stubWorkflow) Delete(ctx context.Context, principal domain.Principal, in ports.DeleteInput) (*ports.DeleteResult, error) {
	return s.deleteFn(ctx, principal, in)
}

type stubIssuer struct {
	pair service.TokenPair
	err  error
}

func (s *stubIssuer) Issue(_ context.Context, _ string) (service.TokenPair, error) {
	return s.pair, s.err
}

func adminContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(middleware.PrincipalKey, domain.NewPrincipal("adminRole@test.com", "sid-1", domain.RoleProductManagement))
	return c, rec
}

func TestAdminHandler_Delete_RejectsMalformedBody(t *testing.T) {
	called := false
	wf := &stubWorkflow{deleteFn: func(context.Context, domain.Principal, ports.DeleteInput) (*ports.DeleteResult, error) {
		called = true
		return &ports.DeleteResult{}, nil
	}}
	h := NewAdminHandler(wf, &stubIssuer{}, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/delete/1", strings.NewReader(`{"csrf_token":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := adminContext(req)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if called {
		t.Fatal("workflow must not run on an unreadable form")
	}
}

func TestAdminHandler_Delete_PassesFormToken(t *testing.T) {
	var got ports.DeleteInput
	wf := &stubWorkflow{deleteFn: func(_ context.Context, _ domain.Principal, in ports.DeleteInput) (*ports.DeleteResult, error) {
		got = in
		return &ports.DeleteResult{Message: "Kayak was deleted"}, nil
	}}
	h := NewAdminHandler(wf, &stubIssuer{}, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/delete/1", strings.NewReader("csrf_token=abc"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := adminContext(req)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got.ProductID != 1 || got.Forgery.SubmittedToken != "abc" {
		t.Fatalf("unexpected delete input: %+v", got)
	}
}

func TestAdminHandler_Save_ValidationFailureSurfacesTokenError(t *testing.T) {
	issueErr := errors.New("token store unavailable")
	wf := &stubWorkflow{submitFn: func(_ context.Context, _ domain.Principal, in ports.SubmitInput) (*ports.SubmitResult, *ports.EditView, error) {
		verr := &domain.ValidationError{Fields: []domain.FieldError{{Field: "name", Message: "Please enter a product name"}}}
		return nil, &ports.EditView{State: ports.StateValidationFailed, Product: &in.Product, Errors: verr.Fields}, verr
	}}
	h := NewAdminHandler(wf, &stubIssuer{err: issueErr}, false)

	req := httptest.NewRequest(http.MethodPost, "/admin/edit", strings.NewReader("id=0&name="))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, _ := adminContext(req)

	if err := h.Save(c); !errors.Is(err, issueErr) {
		t.Fatalf("expected the issue error, got %v", err)
	}
}
