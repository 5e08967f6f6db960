package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName     string
	ServiceName string // reported by GET /
	Env         string // development, staging, production
	Port        string
	GinMode     string

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Field encryption secret; normalized to 32 bytes
	EncryptionKey string

	// CORS
	CORSAllowedOrigins string // comma-separated, "*" allows any

	// Storage: memory (default) or postgres
	StoreDriver   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration
	MigrationsDir string

	// Redis; empty addr disables rate limiting
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ; empty URL disables registration events
	RabbitMQURL         string
	RabbitMQEventsQueue string

	// Bootstrap admin
	AdminEmail    string
	AdminPassword string
	AdminName     string

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName:     getenv("APP_NAME", "kyystore-api"),
		ServiceName: getenv("SERVICE_NAME", "Kyystore API"),
		Env:         getenv("APP_ENV", "development"),
		Port:        getenv("PORT", "4000"),
		GinMode:     getenv("GIN_MODE", "release"),

		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:    getdur("JWT_TTL", 2*time.Hour),

		EncryptionKey: getenv("ENCRYPTION_KEY", "kyystore-encryption-key-32bytes!"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),

		StoreDriver:   strings.ToLower(getenv("STORE_DRIVER", StoreMemory)),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "kyystore"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),
		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		RabbitMQURL:         getenv("RABBITMQ_URL", ""),
		RabbitMQEventsQueue: getenv("RABBITMQ_EVENTS_QUEUE", "user-events"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@kyystore.gg"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin1234"),
		AdminName:     getenv("ADMIN_NAME", "Kyystore Admin"),

		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// PostgresDSN returns a DSN compatible with pgx
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// AllowAllOrigins reports whether "*" is among the allowed origins.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSOrigins() {
		if o == "*" {
			return true
		}
	}
	return false
}
