package config

import (
	"fmt"

	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is built once at process start and passed by reference into every
// component; nothing reads credentials from ambient globals after this.
type Config struct {
	AppEnv       string   `env:"APP_ENV" envDefault:"development"`
	Port         string   `env:"APP_PORT" envDefault:"8080"`
	AllowOrigins []string `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	ResetURL     string   `env:"APP_RESET_URL" envDefault:"http://localhost:3000/reset-password"`
	BcryptCost   int      `env:"BCRYPT_COST" envDefault:"10"`
	JWTSecret    string   `env:"JWT_SECRET,required"`

	DB    DBConfig
	Redis RedisConfig
	SMTP  utils.SMTPConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"secure_notes"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Load reads .env when present, parses the environment and validates the
// signing key. A missing or short JWT secret is a fatal misconfiguration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters, generate one with: openssl rand -base64 32")
	}
	return cfg, nil
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}
