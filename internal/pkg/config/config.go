package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	StoreDriver string `env:"STORE_DRIVER, default=mongo"`

	Mongo       MongoConfig
	Redis       RedisConfig
	AntiForgery AntiForgeryConfig
	Catalog     CatalogConfig
	Bootstrap   BootstrapConfig
	Audit       AuditConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catalog_admin"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AntiForgeryConfig struct {
	Enforced bool          `env:"ANTIFORGERY_ENFORCED, default=true"`
	TTL      time.Duration `env:"ANTIFORGERY_TTL,      default=2h"`
}

type CatalogConfig struct {
	PageSize     int  `env:"CATALOG_PAGE_SIZE, default=2"`
	SeedProducts bool `env:"SEED_PRODUCTS,     default=true"`
}

// BootstrapConfig leaves Password empty to use the well-known seed credential.
type BootstrapConfig struct {
	Password string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.StoreDriver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", c.Catalog.PageSize)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
