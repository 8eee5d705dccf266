package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Sessions & auth
	JWTSecret     string        // HS256 signing secret for session tokens
	Issuer        string        // "iss" claim on minted tokens
	AccessTTL     time.Duration // session token lifetime (default: 24h)
	SessionTTL    time.Duration // idle TTL before a per-user repository is evicted (default: 1h)
	ResetTokenTTL time.Duration // password reset token lifetime (default: 15m)
	BcryptCost    int           // bcrypt cost for password hashes (default: 10)

	// Seed import (optional, empty file = disabled)
	SeedFile       string        // path to the bookmarks seed yaml
	SeedUserEmail  string        // account that receives the seeded bookmarks
	ReloadInterval time.Duration // interval to re-import the seed file (default: 24h)

	// Auth endpoint rate limiting (per client IP)
	AuthRateBurst  int // bucket size (default: 10)
	AuthRatePerMin int // refill per minute (default: 30)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedOrigins []string // CORS origins allowed to call the API
	TrustProxy     bool     // true => trust X-Forwarded-For headers (e.g. behind a reverse proxy)
}

func Load() *Config {
	// Best effort: a missing .env file is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("MARQUE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("MARQUE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MARQUE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("MARQUE_PRETTY_LOG", false),

		// Sessions & auth
		JWTSecret:     requireEnv("MARQUE_JWT_SECRET"),
		Issuer:        getenv("MARQUE_ISSUER", "marque"),
		AccessTTL:     mustDuration("MARQUE_ACCESS_TTL", 24*time.Hour),
		SessionTTL:    mustDuration("MARQUE_SESSION_TTL", time.Hour),
		ResetTokenTTL: mustDuration("MARQUE_RESET_TOKEN_TTL", 15*time.Minute),
		BcryptCost:    getenvInt("MARQUE_BCRYPT_COST", 10),

		// Seed import
		SeedFile:       getenv("MARQUE_SEED_FILE", ""), // optional, empty = seeding disabled
		SeedUserEmail:  getenv("MARQUE_SEED_USER", ""),
		ReloadInterval: mustDuration("MARQUE_SEED_RELOAD_INTERVAL", 24*time.Hour),

		// Rate limiting
		AuthRateBurst:  getenvInt("MARQUE_AUTH_RATE_BURST", 10),
		AuthRatePerMin: getenvInt("MARQUE_AUTH_RATE_PER_MIN", 30),

		// Redis settings
		RedisAddr:             requireEnv("MARQUE_REDIS_ADDR"),
		RedisUser:             getenv("MARQUE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("MARQUE_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("MARQUE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("MARQUE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedOrigins: splitAndTrim(getenv("MARQUE_ALLOWED_ORIGINS", "")),
		TrustProxy:     mustBool("MARQUE_TRUST_PROXY", false),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: MARQUE_REDIS_PASSWORD is required when MARQUE_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.SeedFile != "" && cfg.SeedUserEmail == "" {
		panic("❌ FATAL: MARQUE_SEED_USER is required when MARQUE_SEED_FILE is set")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.JWTSecret = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
