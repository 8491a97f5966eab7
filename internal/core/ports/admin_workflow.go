package ports

import (
	"context"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// WorkflowState is a state of the administration workflow.
type WorkflowState string

const (
	StateListing          WorkflowState = "listing"
	StateEditing          WorkflowState = "editing"
	StateSaved            WorkflowState = "saved"
	StateValidationFailed WorkflowState = "validation_failed"
	StateDeleting         WorkflowState = "deleting"
)

// ForgeryCredentials are the anti-forgery values carried by a mutating request.
type ForgeryCredentials struct {
	Method         string
	CookieToken    string
	SubmittedToken string
}

// SubmitInput is a product form submission.
type SubmitInput struct {
	Product domain.Product
	Forgery ForgeryCredentials
}

// DeleteInput is a delete form submission.
type DeleteInput struct {
	ProductID int64
	Forgery   ForgeryCredentials
}

// ListView is the administration listing.
type ListView struct {
	State    WorkflowState
	Products []domain.Product
}

// EditView is the product form. Product is nil when an edit targets a
// missing id.
type EditView struct {
	State   WorkflowState
	Product *domain.Product
	Errors  []domain.FieldError
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	State   WorkflowState
	Product domain.Product
	Message string
}

// DeleteResult is the outcome of a delete. Deleted is nil when nothing was removed.
type DeleteResult struct {
	State   WorkflowState
	Deleted *domain.Product
	Message string
}

// AdminWorkflow drives the list/create/edit/delete state machine.
type AdminWorkflow interface {
	List(ctx context.Context, principal domain.Principal) (*ListView, error)
	Create(ctx context.Context, principal domain.Principal) (*EditView, error)
	Edit(ctx context.Context, principal domain.Principal, id int64) (*EditView, error)
	// Submit returns a ValidationFailed view together with a
	// *domain.ValidationError when the product is rejected.
	Submit(ctx context.Context, principal domain.Principal, input SubmitInput) (*SubmitResult, *EditView, error)
	Delete(ctx context.Context, principal domain.Principal, input DeleteInput) (*DeleteResult, error)
}
