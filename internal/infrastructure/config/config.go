package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	Debug    bool   `env:"DEBUG,    default=false"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret        string `env:"JWT_SECRET"`
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES, default=30"`

	DB DBConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST,    default=localhost"`
	Port     int    `env:"DB_PORT,    default=5432"`
	User     string `env:"DB_USER,    default=postgres"`
	Password string `env:"DB_PASS"`
	Name     string `env:"DB_NAME,    default=wisensor"`
	SSLMode  string `env:"DB_SSLMODE, default=disable"`
}

// DSN renders the keyword/value connection string expected by the Postgres
// driver.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required")
	}
	return &cfg, nil
}
