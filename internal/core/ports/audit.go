package ports

import (
	"context"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
}

// AuditService records a single audit entry.
type AuditService interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

// AuditSink accepts audit entries for asynchronous recording.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}
