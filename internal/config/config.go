package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// ───── Infrastructure ─────
	DatabaseURL  string
	RedisAddr    string
	KafkaBrokers string

	// ───── Runtime ─────
	HTTPPort    string
	ObsHTTPAddr string
	ServiceName string

	// ───── Card ─────
	// PublicBaseURL is the origin used for shareable card URLs and QR
	// payloads, e.g. https://cards.example.com.
	PublicBaseURL string

	// ───── JWT ─────
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// ───── Rate limiting ─────
	CardRateLimit  int
	CardRateWindow time.Duration

	// ───── Observability ─────
	MetricsEnabled bool
}

func Load() *Config {
	return &Config{
		DatabaseURL:  mustEnv("DATABASE_URL"),
		RedisAddr:    mustEnv("REDIS_ADDR"),
		KafkaBrokers: mustEnv("KAFKA_BROKERS"),

		HTTPPort:    mustEnv("HTTP_PORT"),
		ObsHTTPAddr: getEnv("OBS_HTTP_ADDR", ":8081"),
		ServiceName: getEnv("SERVICE_NAME", "cardlink"),

		PublicBaseURL: mustEnv("PUBLIC_BASE_URL"),

		JWTSecret:   mustEnv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "cardlink-auth"),
		JWTAudience: getEnv("JWT_AUDIENCE", "cardlink-clients"),

		CardRateLimit:  getEnvInt("CARD_RATE_LIMIT", 60),
		CardRateWindow: time.Duration(getEnvInt("CARD_RATE_WINDOW_SEC", 60)) * time.Second,

		MetricsEnabled: getEnvBool("METRICS_ENABLED", false),
	}
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int env %s: %v", k, err)
	}
	return i
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true"
}
