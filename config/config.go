package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Export   ExportConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type AuthConfig struct {
	// Secret verifies HS256 tokens issued by the external identity provider.
	Secret string
	// APIKeyHash is a bcrypt hash of the service API key, if key auth is enabled.
	APIKeyHash string
}

type ExportConfig struct {
	// Dir is where snapshot artifacts are written.
	Dir string
	// DownloadRPS and DownloadBurst bound the download/snapshot endpoints.
	DownloadRPS   float64
	DownloadBurst int
	// QueueTimeout is how long a throttled request waits before giving up.
	QueueTimeout time.Duration
}

// Load reads configuration from the environment, honoring a local .env file
// if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "roster"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Secret:     os.Getenv("AUTH_SECRET"),
			APIKeyHash: os.Getenv("API_KEY_HASH"),
		},
		Export: ExportConfig{
			Dir:           getEnv("EXPORT_DIR", "exports"),
			DownloadRPS:   getEnvFloat("DOWNLOAD_RPS", 5),
			DownloadBurst: getEnvInt("DOWNLOAD_BURST", 10),
			QueueTimeout:  getEnvDuration("DOWNLOAD_QUEUE_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
