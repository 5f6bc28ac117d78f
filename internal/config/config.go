// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Store backends.
const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Simulator SimulatorConfig
	Store     StoreConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type SimulatorConfig struct {
	FailureRate   float64
	MinDelay      time.Duration
	MaxDelay      time.Duration
	DemoOTP       string
	AmountCeiling decimal.Decimal
	Currency      string
}

type StoreConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SnapshotKey   string
}

// Load reads the full configuration from the environment.
func Load() Config {
	ceiling := decimal.NewFromInt(100000)
	if raw, ok := os.LookupEnv("SIM_AMOUNT_CEILING"); ok {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			ceiling = parsed
		}
	}

	return Config{
		Server: ServerConfig{
			Port:        GetEnv("PORT", "3000"),
			CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			JWTSecret: GetEnv("JWT_SECRET", "paisa-demo-secret"),
			TokenTTL:  GetDurationEnv("TOKEN_TTL", 24*time.Hour),
		},
		Simulator: SimulatorConfig{
			FailureRate:   GetFloatEnv("SIM_FAILURE_RATE", 0.05),
			MinDelay:      GetDurationEnv("SIM_MIN_DELAY", 300*time.Millisecond),
			MaxDelay:      GetDurationEnv("SIM_MAX_DELAY", 1200*time.Millisecond),
			DemoOTP:       GetEnv("SIM_DEMO_OTP", "123456"),
			AmountCeiling: ceiling,
			Currency:      GetEnv("SIM_CURRENCY", "INR"),
		},
		Store: StoreConfig{
			Backend:       GetEnv("STORE_BACKEND", StoreBackendMemory),
			RedisAddr:     GetEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: GetEnv("REDIS_PASSWORD", ""),
			RedisDB:       GetIntEnv("REDIS_DB", 0),
			SnapshotKey:   GetEnv("STORE_SNAPSHOT_KEY", "paisa:snapshot"),
		},
	}
}
