package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig carries every knob the gateway reads from the environment.
type AppConfig struct {
	AppEnv   string
	HTTPAddr string

	// Upstream portal API
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Session handling
	RedisAddr     string
	RedisPass     string
	SessionDBURL  string // gorm DSN; "postgres://..." or a sqlite file path
	SessionCookie string
	SessionTTL    time.Duration

	// Navigation audit log (sqlx/postgres); empty disables auditing
	AuditDBURL string

	// Document verification
	VerifyBaseURL string
	OrgName       string
}

// Load reads the environment (and a .env file when present) into AppConfig.
func Load() AppConfig {
	// A missing .env is fine; containers inject real env vars.
	_ = godotenv.Load()

	return AppConfig{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:3000/api/v1"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     getEnv("REDIS_PASS", ""),
		SessionDBURL:  getEnv("SESSION_DB_URL", "clubport.db"),
		SessionCookie: getEnv("SESSION_COOKIE", "clubport_session"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),

		AuditDBURL: getEnv("AUDIT_DB_URL", ""),

		VerifyBaseURL: getEnv("VERIFY_BASE_URL", "https://osas.knp.edu.ph/#"),
		OrgName:       getEnv("ORG_NAME", "Office of Student Affairs and Services"),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
