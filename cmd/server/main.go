package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvcstore/catalog-admin/internal/api"
	"github.com/mvcstore/catalog-admin/internal/core/service"
	"github.com/mvcstore/catalog-admin/internal/infrastructure/queue"
	"github.com/mvcstore/catalog-admin/internal/pkg/config"
	"github.com/mvcstore/catalog-admin/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "catalog-admin",
	})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Get()

	// 1. Stores for the configured driver
	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	// 2. Identity bootstrap must finish before the listener starts
	bootstrapper := service.NewIdentityBootstrapper(
		st.identities,
		service.DefaultBootstrapConfig(cfg.Bootstrap.Password),
		nil,
		logger.Component("bootstrap"),
	)
	if err := bootstrapper.EnsurePopulated(ctx); err != nil {
		return fmt.Errorf("identity bootstrap: %w", err)
	}

	// 3. Catalog
	repo := service.NewCatalogRepository(st.catalog, logger.Component("catalog"))
	if cfg.Catalog.SeedProducts {
		if _, err := service.SeedCatalog(ctx, repo, service.SampleProducts(), logger.Component("seed")); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	// 4. Audit trail
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, service.NewAuditService(st.audit, logger.Component("audit")), logger.Component("audit"))
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	// 5. Gate
	guard := service.NewAntiForgeryGuard(st.tokens, service.AntiForgeryConfig{
		Enforced: cfg.AntiForgery.Enforced,
		TTL:      cfg.AntiForgery.TTL,
	}, logger.Component("antiforgery"))
	if !guard.Enforced() {
		log.Warn().Msg("anti-forgery enforcement is disabled")
	}
	workflow := service.NewAdminWorkflow(repo, guard, dispatcher, logger.Component("admin"))
	auth := service.NewAuthService(st.identities, st.sessions, guard, cfg.JWTSecret, cfg.TokenTTL)

	// 6. HTTP
	e := api.NewRouter(api.Dependencies{
		Catalog:       service.NewCatalogService(repo, cfg.Catalog.PageSize),
		Workflow:      workflow,
		Tokens:        guard,
		Auth:          auth,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.TokenTTL,
		SecureCookies: cfg.IsProduction(),
		Checks:        st.checks,
		Logger:        logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
