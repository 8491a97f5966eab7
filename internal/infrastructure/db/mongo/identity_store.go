package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
)

// IdentityStore implements ports.IdentityStore over the identity_roles and
// identity_accounts collections. Writes use $setOnInsert upserts so existing
// records are never modified.
type IdentityStore struct {
	roles    *mongo.Collection
	accounts *mongo.Collection
}

func NewIdentityStore(db *mongo.Database) *IdentityStore {
	return &IdentityStore{
		roles:    db.Collection(collectionRoles),
		accounts: db.Collection(collectionAccounts),
	}
}

type accountDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Email           string             `bson:"email"`
	EmailNormalized string             `bson:"email_normalized"`
	Roles           []string           `bson:"roles"`
	PasswordHash    string             `bson:"password_hash"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (s *IdentityStore) EnsureRole(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.roles.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name, "created_at": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("upsert role: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

func (s *IdentityStore) EnsureAccount(ctx context.Context, account domain.AdminAccount) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	normalized := strings.ToLower(account.Email)
	roles := account.Roles
	if roles == nil {
		roles = []string{}
	}

	res, err := s.accounts.UpdateOne(ctx,
		bson.M{"email_normalized": normalized},
		bson.M{"$setOnInsert": bson.M{
			"email":            account.Email,
			"email_normalized": normalized,
			"roles":            roles,
			"password_hash":    account.PasswordHash,
			"created_at":       account.CreatedAt.UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("upsert account: %w", err)
	}
	return res.UpsertedCount > 0, nil
}

func (s *IdentityStore) FindByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	err := s.accounts.FindOne(ctx, bson.M{"email_normalized": strings.ToLower(email)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &domain.AdminAccount{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		Roles:        doc.Roles,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
