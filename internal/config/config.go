// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"usuarios-api/internal/util"
	"usuarios-api/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	ServerPort string `env:"PORT" envDefault:"5000"`

	DatabaseURL       string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBQueryTimeout    time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"5s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	MaxRequestBodyBytes int64 `env:"MAX_REQUEST_BODY_BYTES" envDefault:"1048576"`
}

// DB returns the connection pool settings.
func (c *AppConfig) DB() db.Config {
	return db.Config{
		URL:             c.DatabaseURL,
		MaxOpenConns:    c.DBMaxOpenConns,
		MaxIdleConns:    c.DBMaxIdleConns,
		ConnMaxLifetime: c.DBConnMaxLifetime,
	}
}

// IsProduction returns true if running in production mode.
func (c *AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig loads configuration from a .env file (when present) and the
// process environment. A missing DATABASE_URL is reported as
// util.ErrConfiguration.
func LoadConfig(envFiles ...string) (*AppConfig, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to read env file: %w", util.ErrConfiguration, err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrConfiguration, err)
	}

	if cfg.ServerPort == "" {
		return nil, fmt.Errorf("%w: PORT must not be empty", util.ErrConfiguration)
	}
	if cfg.RateLimitEnabled && (cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0) {
		return nil, fmt.Errorf("%w: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive", util.ErrConfiguration)
	}
	if cfg.MaxRequestBodyBytes <= 0 {
		return nil, fmt.Errorf("%w: MAX_REQUEST_BODY_BYTES must be positive", util.ErrConfiguration)
	}

	return cfg, nil
}
