package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

// Insert appends an entry to the catalog_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, entry domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"actor":        entry.Actor,
		"action":       string(entry.Action),
		"product_id":   entry.ProductID,
		"product_name": entry.ProductName,
		"outcome":      entry.Outcome,
		"at":           entry.At.UTC(),
	}
	_, err := r.col.InsertOne(ctx, doc)
	return err
}
