package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults point at the production backend and the public sneaker catalog.
const (
	DefaultBackendURL  = "https://talariafitsbackend.uk.r.appspot.com"
	DefaultCatalogURL  = "https://the-sneaker-database.p.rapidapi.com"
	DefaultCatalogHost = "the-sneaker-database.p.rapidapi.com"
	DefaultDBPath      = "talaria-client.db"
	DefaultKeyPath     = "talaria-client.key"
	DefaultHistoryPath = "talaria-history.db"
)

// Config holds the client configuration. Values are resolved from a .env
// file (if present), then the environment, then command-line flags; flags
// win.
type Config struct {
	BackendURL    string
	CatalogURL    string
	CatalogAPIKey string
	CatalogHost   string
	DBPath        string
	KeyPath       string
	HistoryPath   string
	LogLevel      string
}

// Load reads configuration from .env and the environment.
func Load() *Config {
	// Best effort; missing .env just means environment-only config
	_ = godotenv.Load()

	return &Config{
		BackendURL:    getEnv("TALARIA_BACKEND_URL", DefaultBackendURL),
		CatalogURL:    getEnv("TALARIA_CATALOG_URL", DefaultCatalogURL),
		CatalogAPIKey: getEnv("TALARIA_CATALOG_API_KEY", ""),
		CatalogHost:   getEnv("TALARIA_CATALOG_HOST", DefaultCatalogHost),
		DBPath:        getEnv("TALARIA_DB_PATH", DefaultDBPath),
		KeyPath:       getEnv("TALARIA_KEY_PATH", DefaultKeyPath),
		HistoryPath:   getEnv("TALARIA_HISTORY_PATH", DefaultHistoryPath),
		LogLevel:      getEnv("TALARIA_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
