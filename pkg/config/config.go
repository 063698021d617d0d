package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "installplan"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, exported for tests and tooling.
const (
	EnvAppEnv = "INSTALLPLAN_APP_ENV"
	EnvPort   = "INSTALLPLAN_APP_PORT"
	EnvDBDSN  = "INSTALLPLAN_DB_DSN"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INSTALLPLAN_APP_ENV" required:"true"`
	Port         string `envconfig:"INSTALLPLAN_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"INSTALLPLAN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INSTALLPLAN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"INSTALLPLAN_DB_DSN"`

	MaxOpenConns    int           `envconfig:"INSTALLPLAN_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"INSTALLPLAN_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"INSTALLPLAN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"INSTALLPLAN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN enforces a DSN for Postgres; the sqlite path defaults to a local file.
func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if db.DSN != "" {
		return nil
	}
	if useSQLite {
		db.DSN = "installplan.db"
		return nil
	}
	return fmt.Errorf("%s is required unless %s is enabled", EnvDBDSN, "INSTALLPLAN_USE_SQLITE")
}

type CORSConfig struct {
	AllowedOrigins string `envconfig:"INSTALLPLAN_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"INSTALLPLAN_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"INSTALLPLAN_AUTO_MIGRATE" default:"false"`
}
