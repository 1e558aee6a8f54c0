package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           string
	DBConn         string
	LogLevel       string
	ShareSecret    string
	ShareTokenTTL  time.Duration
	BanxicoURL     string
	BanxicoToken   string
	CetesSeries    string
	RateRefresh    string
	ChartCacheSize int
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
}

// NewConfig loads configuration from environment variables, reading a .env
// file first when one is present
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=econosfera password=econosfera dbname=econosfera sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		ShareSecret:  getEnv("SHARE_SECRET", "econosfera-share-secret"),
		BanxicoURL:   getEnv("BANXICO_URL", "https://www.banxico.org.mx/SieAPIRest/service/v1"),
		BanxicoToken: getEnv("BANXICO_TOKEN", ""),
		CetesSeries:  getEnv("CETES_SERIES", "SF43936"),
		RateRefresh:  getEnv("RATE_REFRESH", "0 30 12 * * *"),
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "25"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "reportes@econosfera.local"),
	}

	ttl, err := time.ParseDuration(getEnv("SHARE_TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHARE_TOKEN_TTL: %w", err)
	}
	cfg.ShareTokenTTL = ttl

	size, err := strconv.Atoi(getEnv("CHART_CACHE_SIZE", "512"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHART_CACHE_SIZE: %w", err)
	}
	cfg.ChartCacheSize = size

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.ShareSecret == "" {
		return nil, fmt.Errorf("SHARE_SECRET is required")
	}
	if cfg.ShareTokenTTL <= 0 {
		return nil, fmt.Errorf("SHARE_TOKEN_TTL must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
