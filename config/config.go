package config

import (
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	AppPort     string
	HTTPTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		if _, exists := os.Stat(".env"); exists == nil {
			log.Println("Warning: .env file exists but couldn't be loaded:", err)
		}
	}

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		AppPort:     getEnv("APP_PORT", "8080"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
	}

	if cfg.DatabaseURL != "" {
		cfg.parseDBURL()
	} else {
		cfg.DBHost = getEnv("DB_HOST", "localhost")
		cfg.DBPort = getEnv("DB_PORT", "5432")
		cfg.DBUser = getEnv("DB_USER", "postgres")
		cfg.DBPassword = getEnv("DB_PASSWORD", "password")
		cfg.DBName = getEnv("DB_NAME", "news")
	}

	log.Printf("Configuration loaded:")
	log.Printf("  APP_PORT: %s", cfg.AppPort)
	log.Printf("  HTTP_TIMEOUT: %s", cfg.HTTPTimeout)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using %s", key, raw, fallback)
		return fallback
	}
	return value
}

func (c *Config) parseDBURL() {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		log.Printf("Error parsing DATABASE_URL: %v", err)
		return
	}

	c.DBHost = u.Hostname()
	c.DBPort = u.Port()
	if c.DBPort == "" {
		c.DBPort = "5432"
	}

	c.DBUser = u.User.Username()
	if password, ok := u.User.Password(); ok {
		c.DBPassword = password
	}

	c.DBName = strings.TrimPrefix(u.Path, "/")
}
