// Package config loads service configuration from a file and environment
// variables. Components receive their settings explicitly at construction
// time; nothing reads ambient process state after startup.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root service configuration.
type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	DB    DBConfig    `yaml:"db"`
	Redis RedisConfig `yaml:"redis"`
	Auth  AuthConfig  `yaml:"auth"`
	Seed  SeedConfig  `yaml:"seed"`
}

// HTTPConfig holds the HTTP server network settings.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr returns the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`

	// RunMigrations enables GORM automigrate on startup.
	RunMigrations bool `yaml:"run_migrations" env:"RUN_MIGRATIONS" env-default:"false"`
}

// RedisConfig holds the Redis settings for the identity cache.
// An empty address disables caching entirely.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`

	// IdentityTTL bounds how long a cached account lookup may be reused.
	// It must stay well under the token TTL.
	IdentityTTL time.Duration `yaml:"identity_ttl" env:"REDIS_IDENTITY_TTL" env-default:"30s"`
}

// AuthConfig holds token issuance parameters.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"1h"`
}

// SeedConfig describes the bootstrap admin account created on first start.
type SeedConfig struct {
	FullName    string `yaml:"full_name" env:"SEED_FULL_NAME" env-default:"Akbarov Akbar"`
	PhoneNumber string `yaml:"phone_number" env:"SEED_PHONE_NUMBER" env-default:"+998909380018"`
	Username    string `yaml:"username" env:"SEED_USERNAME" env-default:"akbarov504"`
	Password    string `yaml:"password" env:"SEED_PASSWORD" env-default:""`
}

// Load reads configuration from the given YAML file (when path is non-empty
// and the file exists) and then from environment variables, with the
// environment taking precedence for unset fields.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
