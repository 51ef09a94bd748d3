// Файл: pkg/config/config.go
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL env var not found")

type AuthConfig struct {
	MaxLoginAttempts int
	LockoutDuration  time.Duration
}

type SessionConfig struct {
	SecretKey    string
	TTL          time.Duration
	CookieName   string
	CookieSecure bool
}

type ServerConfig struct {
	Port string
}

type PostgresConfig struct {
	DSN string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LogConfig struct {
	Level string
	File  string
}

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Session  SessionConfig
	Auth     AuthConfig
	Log      LogConfig
}

// New собирает конфиг из окружения. Без DATABASE_URL приложение не стартует.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Postgres: PostgresConfig{
			DSN: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			SecretKey:    getEnv("SESSION_SECRET_KEY", "3530databasesecretkey"),
			TTL:          getEnvDuration("SESSION_TTL", time.Hour*12),
			CookieName:   getEnv("SESSION_COOKIE_NAME", "session"),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		},
		Auth: AuthConfig{
			MaxLoginAttempts: getEnvInt("AUTH_MAX_LOGIN_ATTEMPTS", 5),
			LockoutDuration:  getEnvDuration("AUTH_LOCKOUT_DURATION", time.Minute*15),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if cfg.Postgres.DSN == "" {
		return nil, ErrMissingDatabaseURL
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Warning: %s=%q is not an integer, using %d", key, value, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: %s=%q is not a duration, using %s", key, value, fallback)
	}
	return fallback
}
