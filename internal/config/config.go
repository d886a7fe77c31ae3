package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"store-inventory"`
	Version     string `env:"VERSION" envDefault:"dev"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"store"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// APIKey authenticates service-to-service calls (POST /inventory/add).
	APIKey string `env:"API_KEY"`
	// JWTSecret verifies user bearer tokens.
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenCacheSize int           `env:"TOKEN_CACHE_SIZE" envDefault:"1024"`
	TokenCacheTTL  time.Duration `env:"TOKEN_CACHE_TTL" envDefault:"5m"`

	PointsServiceURL  string        `env:"POINTS_SERVICE_URL" envDefault:"http://points-service:8002"`
	PointsTimeout     time.Duration `env:"POINTS_TIMEOUT" envDefault:"5s"`
	PointsMaxAttempts int           `env:"POINTS_MAX_ATTEMPTS" envDefault:"3"`
	PointsRetryBase   time.Duration `env:"POINTS_RETRY_BASE" envDefault:"100ms"`

	InventoryMode       string `env:"INVENTORY_MODE" envDefault:"local"`
	InventoryServiceURL string `env:"INVENTORY_SERVICE_URL"`

	CatalogOwnershipMode string `env:"CATALOG_OWNERSHIP_MODE" envDefault:"per_user"`
	CatalogSeedPath      string `env:"CATALOG_SEED_PATH" envDefault:"configs/catalog.json"`
	SeedOnStart          bool   `env:"SEED_ON_START" envDefault:"false"`

	PurchaseTimeout    time.Duration `env:"PURCHASE_TIMEOUT" envDefault:"30s"`
	ClaimSweepInterval time.Duration `env:"CLAIM_SWEEP_INTERVAL" envDefault:"1m"`
	ClaimStaleAfter    time.Duration `env:"CLAIM_STALE_AFTER" envDefault:"10m"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}
