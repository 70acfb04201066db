package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	LogPretty       bool          `env:"LOG_PRETTY,       default=false"`
	StoreDriver     string        `env:"STORE_DRIVER,     default=memory"`
	BcryptCost      int           `env:"BCRYPT_COST,      default=10"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=15s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=users_service"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

// RedisConfig is only used when Enabled; Redis then backs the email lock.
type RedisConfig struct {
	Enabled bool          `env:"REDIS_ENABLED,  default=false"`
	Addr    string        `env:"REDIS_ADDR,     default=localhost:6379"`
	DB      int           `env:"REDIS_DB,       default=0"`
	LockTTL time.Duration `env:"EMAIL_LOCK_TTL, default=10s"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreMongo:
	default:
		return fmt.Errorf("config: STORE_DRIVER must be %q or %q, got %q", StoreMemory, StoreMongo, c.StoreDriver)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: BCRYPT_COST must be within [%d,%d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.StoreDriver == StoreMongo && c.Mongo.URI == "" {
		return fmt.Errorf("config: MONGO_URI is required when STORE_DRIVER=%s", StoreMongo)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: REDIS_ADDR is required when REDIS_ENABLED=true")
	}
	return nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
