package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mvcstore/catalog-admin/internal/core/domain"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
)

// ProductStore implements ports.CatalogStore. Products carry integer ids
// drawn from a sequence document in the counters collection.
type ProductStore struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{
		col:      db.Collection(collectionProducts),
		counters: db.Collection(collectionCounters),
	}
}

type productDoc struct {
	ID          int64                `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Category    string               `bson:"category"`
}

func toProductDoc(p domain.Product) (productDoc, error) {
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return productDoc{}, fmt.Errorf("encode price %s: %w", p.Price, err)
	}
	return productDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Category:    p.Category,
	}, nil
}

func (d productDoc) toDomain() (domain.Product, error) {
	price, err := decimal.NewFromString(d.Price.String())
	if err != nil {
		return domain.Product{}, fmt.Errorf("decode price of product %d: %w", d.ID, err)
	}
	return domain.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       price,
		Category:    d.Category,
	}, nil
}

func filterDoc(f ports.ListFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return filter
}

func (s *ProductStore) List(ctx context.Context, f ports.ListFilter) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.col.Find(ctx, filterDoc(f), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *ProductStore) Count(ctx context.Context, f ports.ListFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return s.col.CountDocuments(ctx, filterDoc(f))
}

func (s *ProductStore) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d productDoc
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	p, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert allocates the next product id and stores p under it.
func (s *ProductStore) Insert(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := s.nextID(ctx)
	if err != nil {
		return err
	}

	doc, err := toProductDoc(*p)
	if err != nil {
		return err
	}
	doc.ID = id

	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *ProductStore) Update(ctx context.Context, p domain.Product) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toProductDoc(p)
	if err != nil {
		return false, err
	}

	update := bson.M{"$set": bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"price":       doc.Price,
		"category":    doc.Category,
	}}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d productDoc
	if err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	p, err := d.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductStore) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": collectionProducts},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate product id: %w", err)
	}
	return counter.Seq, nil
}

func bsonKeys(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}
