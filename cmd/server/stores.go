package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mvcstore/catalog-admin/internal/api/handler"
	"github.com/mvcstore/catalog-admin/internal/core/ports"
	"github.com/mvcstore/catalog-admin/internal/infrastructure/db/memory"
	"github.com/mvcstore/catalog-admin/internal/infrastructure/db/mongo"
	"github.com/mvcstore/catalog-admin/internal/infrastructure/db/redis"
	"github.com/mvcstore/catalog-admin/internal/pkg/config"
)

// stores bundles the adapters chosen by STORE_DRIVER.
type stores struct {
	catalog    ports.CatalogStore
	identities ports.IdentityStore
	tokens     ports.TokenStore
	sessions   ports.SessionDenylist
	audit      ports.AuditRepository
	checks     map[string]handler.DependencyCheck
	closers    []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return &stores{
			catalog:    memory.NewCatalogStore(),
			identities: memory.NewIdentityStore(),
			tokens:     memory.NewTokenStore(),
			sessions:   memory.NewSessionDenylist(),
			audit:      memory.NewAuditRepository(),
		}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	st := &stores{closers: []func(){func() { _ = client.Disconnect(context.Background()) }}}

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		st.close()
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		st.close()
		return nil, err
	}
	st.closers = append(st.closers, func() { _ = rdb.Close() })

	st.catalog = mongo.NewProductStore(db)
	st.identities = mongo.NewIdentityStore(db)
	st.audit = mongo.NewAuditRepository(db)
	st.tokens = redis.NewTokenStore(rdb)
	st.sessions = redis.NewSessionDenylist(rdb)
	st.checks = map[string]handler.DependencyCheck{
		"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
		"redis":   func(ctx context.Context) error { return redis.Ping(ctx, rdb, 2*time.Second) },
	}
	return st, nil
}
