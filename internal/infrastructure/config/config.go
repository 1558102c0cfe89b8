package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question bank ingestion
	QuestionsDir          string        // directory holding one JSON file per exam
	CatalogReloadInterval time.Duration // 0 = reload only via the API

	// Session store
	DBPath string

	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:         mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:       mustGetDuration("SHUTDOWN_TIMEOUT"),
		QuestionsDir:          getenvDefault("QUESTIONS_DIR", "questions"),
		CatalogReloadInterval: getDurationDefault("CATALOG_RELOAD_INTERVAL", 0),
		DBPath:                getenvDefault("DB_PATH", "quizdrill.db"),
		AllowedOrigins:        strings.Split(getenvDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
