package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Data sources the API can serve advocates from.
const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
)

// Seed sources the advocate dataset can be loaded from.
const (
	SeedSourceBuiltin = "builtin"
	SeedSourceFile    = "file"
	SeedSourceObject  = "object"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// SQLiteConfig holds settings for the embedded SQLite backend.
type SQLiteConfig struct {
	Path string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SeedConfig selects where the advocate dataset comes from at startup.
type SeedConfig struct {
	Source    string
	Path      string
	ObjectKey string
}

// AppConfig is the centralized configuration struct for the API server.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string
	Port             string
	LogLevel         string
	Timezone         string
	DataSource       string
	CORSAllowOrigins string
	Seed             SeedConfig
	Database         DatabaseConfig
	SQLite           SQLiteConfig
	MinIO            MinIOConfig
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ClientConfig holds settings for the terminal client.
type ClientConfig struct {
	APIURL   string
	Timeout  time.Duration
	Debounce time.Duration
	PageSize int
	LogLevel string
}

// Load reads server configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:          getEnv("APP_HOST", "localhost:8080"),
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Timezone:         getEnv("APP_TIMEZONE", "UTC"),
		DataSource:       strings.ToLower(getEnv("DATA_SOURCE", DataSourceMemory)),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		Seed: SeedConfig{
			Source:    strings.ToLower(getEnv("SEED_SOURCE", SeedSourceBuiltin)),
			Path:      getEnv("SEED_PATH", ""),
			ObjectKey: getEnv("SEED_OBJECT_KEY", "advocates.json"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "advocates.db"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// LoadClient reads terminal client configuration from environment variables.
// Command-line flags may override the values afterwards.
func LoadClient() *ClientConfig {
	return &ClientConfig{
		APIURL:   getEnv("ADVOCATES_API_URL", "http://localhost:8080"),
		Timeout:  time.Duration(getEnvInt("ADVOCATES_TIMEOUT_SEC", 10)) * time.Second,
		Debounce: time.Duration(getEnvInt("ADVOCATES_DEBOUNCE_MS", 300)) * time.Millisecond,
		PageSize: getEnvInt("ADVOCATES_PAGE_SIZE", 10),
		LogLevel: getEnv("ADVOCATES_LOG_LEVEL", "info"),
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
