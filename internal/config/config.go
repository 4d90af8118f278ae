package config

import (
	"encoding/hex"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Game API upstream
	GameAPIBaseURL string
	GameAPITimeout time.Duration

	// Gateway session tokens
	JWTSecret            string
	SessionKeyHex        string
	SessionTTL           time.Duration
	PersistentSessionTTL time.Duration

	// Redis (session store)
	RedisAddr     string
	RedisPassword string
	RedisDB       string

	// Postgres (system logs + audit trail only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Admin
	AdminMemberIDs string
	AdminToken     string

	// Server
	Port        string
	CORSOrigins string
	LocalesPath string
}

func Load() *Config {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	return &Config{
		GameAPIBaseURL: getEnv("GAME_API_BASE_URL", "http://localhost:9000"),
		GameAPITimeout: parseDuration(getEnv("GAME_API_TIMEOUT", "10s")),

		JWTSecret:            getEnv("JWT_SECRET", ""),
		SessionKeyHex:        getEnv("SESSION_KEY", ""),
		SessionTTL:           parseDuration(getEnv("SESSION_TTL", "12h")),
		PersistentSessionTTL: parseDuration(getEnv("PERSISTENT_SESSION_TTL", "720h")),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "portal_gateway"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminMemberIDs: getEnv("ADMIN_MEMBER_IDS", ""),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LocalesPath: getEnv("LOCALES_PATH", "locales"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// SessionKey decodes the hex session key; it must decode to 32 bytes.
func (c *Config) SessionKey() ([]byte, error) {
	return hex.DecodeString(c.SessionKeyHex)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
