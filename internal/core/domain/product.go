package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. ID 0 means the product has not been persisted yet.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
}

// IsNew reports whether saving p must insert rather than update.
func (p Product) IsNew() bool {
	return p.ID == 0
}

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries one message per violated field.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Messages returns the field messages keyed by field name.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// ValidateProduct checks the mutable fields of p. It returns nil or a
// *ValidationError listing every violated field in declaration order.
func ValidateProduct(p Product) error {
	var fields []FieldError
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Please enter a product name"})
	}
	if strings.TrimSpace(p.Description) == "" {
		fields = append(fields, FieldError{Field: "description", Message: "Please enter a description"})
	}
	if !p.Price.IsPositive() {
		fields = append(fields, FieldError{Field: "price", Message: "Please enter a positive price"})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
