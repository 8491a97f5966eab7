package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService backed by repo.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single audit entry.
func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) error {
	if entry.Action == "" {
		return fmt.Errorf("record audit entry: missing action")
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.log.Debug().
		Str("actor", entry.Actor).
		Str("action", string(entry.Action)).
		Int64("product_id", entry.ProductID).
		Str("outcome", entry.Outcome).
		Msg("audit entry recorded")
	return nil
}
