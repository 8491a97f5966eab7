package memory

import (
	"context"
	"sync"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// AuditRepository keeps audit entries in insertion order.
type AuditRepository struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Insert(_ context.Context, entry domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (r *AuditRepository) Entries() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]domain.AuditEntry(nil), r.entries...)
}
