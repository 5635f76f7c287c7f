package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Cache backend names accepted in CACHE_BACKEND.
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

type Settings struct {
	Env           string
	AppPort       string
	DBDSN         string
	JWTSecret     string
	MediaDir      string
	CacheBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads .env if present and validates the required variables. Missing
// required settings are a startup error, not a fatal inside this package.
func Load() (*Settings, error) {
	// A missing .env is fine; the real environment wins either way.
	_ = godotenv.Load()

	s := &Settings{
		Env:           getenv("APP_ENV", "development"),
		AppPort:       getenv("APP_PORT", "8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		MediaDir:      getenv("MEDIA_DIR", "media"),
		CacheBackend:  getenv("CACHE_BACKEND", CacheBackendMemory),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}
	if n, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
		s.RedisDB = n
	}

	if s.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is not set")
	}
	if s.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	switch s.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if s.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is not set but CACHE_BACKEND=redis")
		}
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", s.CacheBackend)
	}
	return s, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
