package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/pkg/metrics"
	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

type noopAuditSink struct{}

func (noopAuditSink) Enqueue(domain.AuditEntry) {}

// AdminWorkflow gates every administration operation. Mutations are checked
// for forgery first, then authorized, and only then reach the repository.
type AdminWorkflow struct {
	repo   *CatalogRepository
	guard  *AntiForgeryGuard
	audit  ports.AuditSink
	now    func() time.Time
	logger zerolog.Logger
}

// NewAdminWorkflow accepts a nil audit sink, in which case nothing is recorded.
func NewAdminWorkflow(repo *CatalogRepository, guard *AntiForgeryGuard, audit ports.AuditSink, logger zerolog.Logger) *AdminWorkflow {
	if audit == nil {
		audit = noopAuditSink{}
	}
	return &AdminWorkflow{
		repo:   repo,
		guard:  guard,
		audit:  audit,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (w *AdminWorkflow) List(ctx context.Context, principal domain.Principal) (*ports.ListView, error) {
	if err := w.authorize(principal, domain.OpList); err != nil {
		return nil, err
	}
	products, err := w.repo.List(ctx, ports.ListFilter{})
	if err != nil {
		return nil, err
	}
	return &ports.ListView{State: ports.StateListing, Products: products}, nil
}

// Create opens an empty form.
func (w *AdminWorkflow) Create(_ context.Context, principal domain.Principal) (*ports.EditView, error) {
	if err := w.authorize(principal, domain.OpCreate); err != nil {
		return nil, err
	}
	return &ports.EditView{State: ports.StateEditing, Product: &domain.Product{}}, nil
}

// Edit opens the form for id. The view carries a nil product when id is unknown.
func (w *AdminWorkflow) Edit(ctx context.Context, principal domain.Principal, id int64) (*ports.EditView, error) {
	if err := w.authorize(principal, domain.OpView); err != nil {
		return nil, err
	}
	product, err := w.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.EditView{State: ports.StateEditing, Product: product}, nil
}

// Submit saves a form post. The product form serves both new and existing
// products, so it is authorized as an edit regardless of the ID.
func (w *AdminWorkflow) Submit(ctx context.Context, principal domain.Principal, input ports.SubmitInput) (*ports.SubmitResult, *ports.EditView, error) {
	if err := w.checkForgery(ctx, principal, input.Forgery); err != nil {
		return nil, nil, err
	}
	if err := w.authorize(principal, domain.OpEdit); err != nil {
		return nil, nil, err
	}

	saved, outcome, err := w.repo.Save(ctx, input.Product)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		product := input.Product
		return nil, &ports.EditView{
			State:   ports.StateValidationFailed,
			Product: &product,
			Errors:  verr.Fields,
		}, err
	}
	if err != nil {
		return nil, nil, err
	}

	w.record(principal, domain.AuditProductSaved, saved, string(outcome))
	return &ports.SubmitResult{
		State:   ports.StateSaved,
		Product: saved,
		Message: fmt.Sprintf("%s has been saved", saved.Name),
	}, nil, nil
}

// Delete removes a product. Deleting an unknown id succeeds with no message.
func (w *AdminWorkflow) Delete(ctx context.Context, principal domain.Principal, input ports.DeleteInput) (*ports.DeleteResult, error) {
	if err := w.checkForgery(ctx, principal, input.Forgery); err != nil {
		return nil, err
	}
	if err := w.authorize(principal, domain.OpDelete); err != nil {
		return nil, err
	}

	deleted, err := w.repo.Delete(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	result := &ports.DeleteResult{State: ports.StateListing, Deleted: deleted}
	if deleted != nil {
		result.Message = fmt.Sprintf("%s was deleted", deleted.Name)
		w.record(principal, domain.AuditProductDeleted, *deleted, "removed")
	}
	return result, nil
}

func (w *AdminWorkflow) authorize(principal domain.Principal, op domain.Operation) error {
	err := domain.Require(principal, op)
	if err != nil {
		metrics.AuthorizationDenialsTotal.WithLabelValues(string(op)).Inc()
		w.logger.Info().
			Str("principal", principal.Identifier).
			Str("operation", string(op)).
			Msg("authorization denied")
	}
	return err
}

func (w *AdminWorkflow) checkForgery(ctx context.Context, principal domain.Principal, creds ports.ForgeryCredentials) error {
	if !w.guard.Enforced() {
		metrics.AntiForgeryBypassedTotal.Inc()
		w.logger.Warn().
			Str("principal", principal.Identifier).
			Str("method", creds.Method).
			Msg("anti-forgery verification disabled, request accepted unverified")
		return nil
	}
	return w.guard.Verify(ctx, VerifyRequest{
		Method:         creds.Method,
		SessionID:      principal.SessionID,
		CookieToken:    creds.CookieToken,
		SubmittedToken: creds.SubmittedToken,
	})
}

func (w *AdminWorkflow) record(principal domain.Principal, action domain.AuditAction, p domain.Product, outcome string) {
	w.audit.Enqueue(domain.AuditEntry{
		Actor:       principal.Identifier,
		Action:      action,
		ProductID:   p.ID,
		ProductName: p.Name,
		Outcome:     outcome,
		At:          w.now(),
	})
}
