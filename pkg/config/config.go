package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	Catalog CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validateBackend(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CATALOG_APP_ENV" required:"true"`
	Port         string `envconfig:"CATALOG_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CATALOG_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CATALOG_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects where the serialized product collection lives.
type StoreConfig struct {
	Backend string `envconfig:"CATALOG_STORE_BACKEND" default:"redis"`
	Key     string `envconfig:"CATALOG_STORE_KEY" default:"products"`
}

func (s StoreConfig) IsRedis() bool  { return strings.EqualFold(s.Backend, StoreBackendRedis) }
func (s StoreConfig) IsDB() bool     { return strings.EqualFold(s.Backend, StoreBackendDB) }
func (s StoreConfig) IsMemory() bool { return strings.EqualFold(s.Backend, StoreBackendMemory) }

func (s StoreConfig) validateBackend(cfg *Config) error {
	switch {
	case s.IsRedis():
		if cfg.Redis.URL == "" && cfg.Redis.Address == "" {
			return fmt.Errorf("store backend %q requires %s or %s", s.Backend, EnvRedisURL, EnvRedisAddr)
		}
	case s.IsDB():
		if cfg.DB.DSN == "" && !strings.EqualFold(cfg.DB.Driver, DBDriverSQLite) {
			return fmt.Errorf("store backend %q requires %s for driver %q", s.Backend, EnvDBDSN, cfg.DB.Driver)
		}
	case s.IsMemory():
	default:
		return fmt.Errorf("unknown store backend %q", s.Backend)
	}
	return nil
}

type DBConfig struct {
	Driver string `envconfig:"CATALOG_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"CATALOG_DB_DSN"`
	// SQLitePath is used when Driver is sqlite and no DSN is given.
	SQLitePath string `envconfig:"CATALOG_DB_SQLITE_PATH" default:"catalog.db"`

	MaxOpenConns    int           `envconfig:"CATALOG_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"CATALOG_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CATALOG_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CATALOG_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	AutoMigrate bool `envconfig:"CATALOG_DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CATALOG_REDIS_URL"`
	Address      string        `envconfig:"CATALOG_REDIS_ADDR"`
	Password     string        `envconfig:"CATALOG_REDIS_PASSWORD"`
	DB           int           `envconfig:"CATALOG_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CATALOG_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CATALOG_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CATALOG_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CATALOG_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CATALOG_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// CatalogConfig tunes the query engine defaults.
type CatalogConfig struct {
	PageSize        int           `envconfig:"CATALOG_PAGE_SIZE" default:"12"`
	SearchBlurGrace time.Duration `envconfig:"CATALOG_SEARCH_BLUR_GRACE" default:"100ms"`
}
