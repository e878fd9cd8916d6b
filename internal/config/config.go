package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port int

	DBURL string

	JWTSecret      string
	SessionTTLDays int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JobQueueKey   string

	AdminEmail    string
	AdminPassword string
	AdminName     string
	AdminRole     string

	CORSAllowedOrigins []string

	DefaultPageLimit int

	OTLPEndpoint string
}

func Load() Config {
	// best effort .env for local runs; deployments set the real environment
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")

	secret := os.Getenv("JWT_SECRET")

	if secret == "" && env != "prod" {
		// dev-only fallback, Validate rejects this in prod
		secret = "dev-secret"
	}

	return Config{
		Env:  env,
		Port: getEnvInt("PORT", 8080),

		DBURL: buildDBURL(),

		JWTSecret:      secret,
		SessionTTLDays: getEnvInt("SESSION_TTL_DAYS", 7),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		JobQueueKey:   getEnv("JOB_QUEUE_KEY", "medixpro:jobs"),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@medixpro.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminRole:     getEnv("ADMIN_ROLE", "admin"),

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		DefaultPageLimit: getEnvInt("DEFAULT_PAGE_LIMIT", 10),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

// Validate catches configuration that must never reach production.
func (c Config) Validate() error {
	if c.JWTSecret == "" || (c.Env == "prod" && c.JWTSecret == "dev-secret") {
		return errors.New("JWT_SECRET must be set")
	}

	if c.SessionTTLDays < 1 {
		return errors.New("SESSION_TTL_DAYS must be at least 1")
	}

	return nil
}

func buildDBURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "medixpro")
	pass := getEnv("DB_PASSWORD", "medixpro")
	name := getEnv("DB_NAME", "medixpro")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)

		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
