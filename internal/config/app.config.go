package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	HTTPAddr   string
	AppEnv     string
	TrustProxy bool // honour X-Forwarded-For / X-Real-IP

	RedisAddr string
	RedisPass string

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	JWTPubPath  string
	JWTIssuer   string
	JWTAudience string

	RateLimitPerMin      int
	SubscriptionCacheTTL time.Duration
	ProfileCacheTTL      time.Duration
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8040"),
		AppEnv:   getEnv("APP_ENV", "production"),

		TrustProxy: getEnvAsBool("TRUST_PROXY", false),

		RedisAddr: getEnv("REDIS_ADDR", "redis:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		KafkaBrokers: parseCSVEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "profile-events"),

		JWTPubPath:  getEnv("JWT_PUBLIC_KEY_PATH", "/app/keys/jwt_public.pem"),
		JWTIssuer:   getEnv("JWT_ISSUER", "auth-service"),
		JWTAudience: getEnv("JWT_AUDIENCE", "matrimony"),

		RateLimitPerMin:      getEnvAsInt("RATE_LIMIT_PER_MIN", 100),
		SubscriptionCacheTTL: getEnvAsDuration("SUBSCRIPTION_CACHE_TTL", 5*time.Minute),
		ProfileCacheTTL:      getEnvAsDuration("PROFILE_CACHE_TTL", 15*time.Minute),
	}
}

func (c AppConfig) Development() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseCSVEnv(key, fallback string) []string {
	val := getEnv(key, fallback)
	if strings.TrimSpace(val) == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
