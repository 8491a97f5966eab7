package domain

import "time"

// AuditAction names a catalog mutation recorded in the audit trail.
type AuditAction string

const (
	AuditProductSaved   AuditAction = "product_saved"
	AuditProductDeleted AuditAction = "product_deleted"
)

// AuditEntry records who changed which product and how.
type AuditEntry struct {
	Actor       string
	Action      AuditAction
	ProductID   int64
	ProductName string
	Outcome     string
	At          time.Time
}
