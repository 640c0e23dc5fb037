package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed down explicitly; nothing reads the
// environment after startup.
type Config struct {
	HTTPAddr string

	Broker   BrokerConfig
	Database *DatabaseConfig

	JWTSecret             string
	AllowUnverifiedTokens bool
}

type BrokerConfig struct {
	Host     string
	Port     string
	User     string
	Password string

	DialTimeout    time.Duration
	PublishTimeout time.Duration
}

// URL assembles the AMQP connection string. Credentials are escaped so they
// never break the URL, and the result must not be logged.
func (b BrokerConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		url.QueryEscape(b.User), url.QueryEscape(b.Password), b.Host, b.Port)
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

const (
	defaultHTTPAddr = ":8080"
	defaultTimeout  = 5 * time.Second
)

// Load reads an optional .env file and the environment. Missing broker
// settings abort startup rather than attempting a connection with empty
// credentials.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may be populated directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr: envOr("HTTP_ADDR", defaultHTTPAddr),
		Broker: BrokerConfig{
			DialTimeout:    defaultTimeout,
			PublishTimeout: defaultTimeout,
		},
		AllowUnverifiedTokens: os.Getenv("JWT_ALLOW_UNVERIFIED") == "true",
		JWTSecret:             os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.Broker.Host, err = requireEnv("RABBITMQ_HOST"); err != nil {
		return nil, err
	}
	if cfg.Broker.Port, err = requireEnv("RABBITMQ_PORT"); err != nil {
		return nil, err
	}
	if cfg.Broker.User, err = requireEnv("RABBITMQ_USER"); err != nil {
		return nil, err
	}
	if cfg.Broker.Password, err = requireEnv("RABBITMQ_PASSWORD"); err != nil {
		return nil, err
	}

	if d, err := optionalDuration("DIAL_TIMEOUT"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Broker.DialTimeout = d
	}
	if d, err := optionalDuration("PUBLISH_TIMEOUT"); err != nil {
		return nil, err
	} else if d > 0 {
		cfg.Broker.PublishTimeout = d
	}

	if !cfg.AllowUnverifiedTokens && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required unless JWT_ALLOW_UNVERIFIED=true")
	}

	db, err := loadDatabase()
	if err != nil {
		return nil, err
	}
	cfg.Database = db

	return cfg, nil
}

// loadDatabase reads the optional DB_* block. The gateway runs without a
// database, but a partially configured one is a deployment mistake.
func loadDatabase() (*DatabaseConfig, error) {
	if os.Getenv("DB_HOST") == "" {
		for _, v := range []string{"DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"} {
			if os.Getenv(v) != "" {
				return nil, fmt.Errorf("%s is set but DB_HOST is not", v)
			}
		}
		return nil, nil
	}

	db := &DatabaseConfig{Host: os.Getenv("DB_HOST")}
	var err error
	if db.Port, err = requireEnv("DB_PORT"); err != nil {
		return nil, err
	}
	if db.User, err = requireEnv("DB_USER"); err != nil {
		return nil, err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	return db, nil
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", name)
	}
	return v, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func optionalDuration(name string) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %w", name, err)
	}
	return d, nil
}
