package config

import (
	"os"
	"strconv"
	"time"
)

// StoreConfig holds document store connection settings.
type StoreConfig struct {
	Host string
	Port string
	Name string
	// URI overrides Host and Port when set (e.g. a mongodb+srv URI).
	URI         string
	MaxPoolSize int
	Timeout     time.Duration
}

// MinIOConfig holds object storage settings for character and comic artwork.
// Artwork links are disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLTTL    time.Duration
}

// LogConfig controls the clue logger.
type LogConfig struct {
	Debug  bool
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Store   StoreConfig
	MinIO   MinIOConfig
	Log     LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Store: StoreConfig{
			Host:        getEnv("STORE_HOST", "localhost"),
			Port:        getEnv("STORE_PORT", "27017"),
			Name:        getEnv("STORE_NAME", "marvel"),
			URI:         getEnv("STORE_URI", ""),
			MaxPoolSize: getEnvInt("STORE_MAX_POOL_SIZE", 10),
			Timeout:     getEnvDuration("STORE_TIMEOUT", 5*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			URLTTL:    getEnvDuration("ARTWORK_URL_TTL", time.Hour),
		},
		Log: LogConfig{
			Debug:  getEnvBool("LOG_DEBUG", false),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d > 0 {
			return d
		}
	}
	return def
}
