package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Supported session token formats.
const (
	TokenFormatJWT    = "jwt"
	TokenFormatPASETO = "paseto"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	Database  Database `envPrefix:"DATABASE_"`
	Auth      Auth     `envPrefix:"AUTH_"`
}

// HTTP contains REST server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins     []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// Database selects the storage backend.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"file:todo.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"`
}

// Auth contains credential and session token parameters.
type Auth struct {
	Secret            string        `env:"SECRET" envDefault:"devsecret"`
	TokenFormat       string        `env:"TOKEN_FORMAT" envDefault:"jwt"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"2h"`
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"10"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`
}

// NewConfig loads configuration from an optional .env file and environment variables.
func NewConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Auth.TokenFormat {
	case TokenFormatJWT, TokenFormatPASETO:
	default:
		return fmt.Errorf("unsupported token format %q", c.Auth.TokenFormat)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.Auth.MinPasswordLength < 1 {
		return fmt.Errorf("min password length must be positive")
	}

	return nil
}
