package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultCatalogURL     = "https://fakestoreapi.com/products"
	defaultTimeoutSeconds = 10
)

type Config struct {
	// Server settings
	Port string

	// Catalog endpoint supplying the product list
	CatalogURL string

	// Public base URL used for canonical product links in the
	// structured data and the sitemap
	SiteBaseURL string

	// Timeout for the outbound catalog request
	HTTPTimeout time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	port := getEnv("PORT", defaultPort)

	return &Config{
		Port:        port,
		CatalogURL:  getEnv("CATALOG_URL", defaultCatalogURL),
		SiteBaseURL: getEnv("SITE_BASE_URL", "http://localhost:"+port),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %v", key, err)
		return fallback
	}
	return n
}
