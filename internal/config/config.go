package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	API      APIConfig
	State    StateConfig
	Redis    RedisConfig
	Media    MediaConfig
	Pricing  PricingConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	Env            string
	AllowedOrigins []string
}

type SessionConfig struct {
	Secret string
	Name   string
	MaxAge int    // seconds
	Dir    string // session files for the "session" state backend
}

// APIConfig points at the booking REST API
type APIConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// StateConfig selects where workspaces are kept: "session" or "redis"
type StateConfig struct {
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type MediaConfig struct {
	MaxUploadBytes int64
	MaxImageWidth  int
	MaxImageHeight int
	JPEGQuality    int
}

type PricingConfig struct {
	DefaultCurrency string
}

// SecurityConfig guards the state-changing endpoints
type SecurityConfig struct {
	CSRFEnabled       bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Host:           getEnv("HOST", "localhost"),
			Env:            getEnv("ENV", "development"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			Name:   getEnv("SESSION_NAME", "portal_session"),
			MaxAge: getEnvAsInt("SESSION_MAX_AGE", 86400*7),
			Dir:    getEnv("SESSION_DIR", filepath.Join(os.TempDir(), "vendor-portal-sessions")),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000/api/v1"), "/"),
			Token:   getEnv("API_TOKEN", ""),
			Timeout: time.Duration(getEnvAsInt("API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		State: StateConfig{
			Backend: strings.ToLower(getEnv("STATE_BACKEND", "session")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("REDIS_TTL_MINUTES", 24*60)) * time.Minute,
		},
		Media: MediaConfig{
			MaxUploadBytes: int64(getEnvAsInt("MEDIA_MAX_UPLOAD_MB", 50)) << 20,
			MaxImageWidth:  getEnvAsInt("MEDIA_MAX_IMAGE_WIDTH", 1920),
			MaxImageHeight: getEnvAsInt("MEDIA_MAX_IMAGE_HEIGHT", 1080),
			JPEGQuality:    getEnvAsInt("MEDIA_JPEG_QUALITY", 85),
		},
		Pricing: PricingConfig{
			DefaultCurrency: strings.ToUpper(getEnv("DEFAULT_CURRENCY", "KES")),
		},
		Security: SecurityConfig{
			CSRFEnabled:       getEnvAsBool("CSRF_ENABLED", true),
			RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 20),
			RateLimitWindow:   time.Duration(getEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	return config, nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// UsesRedis reports whether workspaces live in Redis
func (c *Config) UsesRedis() bool {
	return c.State.Backend == "redis"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
