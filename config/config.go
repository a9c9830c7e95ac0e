package config

import (
	"os"
	"strings"
	"time"
)

// ShopifyConfig holds the commerce gateway connection settings.
type ShopifyConfig struct {
	Domain      string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// Config holds the storefront service configuration.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	Shopify ShopifyConfig

	// SnapshotDir is used by the file-backed cache store.
	SnapshotDir string
	// RedisAddr switches the cache store to Redis when set.
	RedisAddr string
	// KafkaBrokers enables event publishing when set.
	KafkaBrokers []string
}

// Load loads the service configuration from the environment.
func Load() *Config {
	cfg := &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "storefront-service"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8084"),
		Shopify: ShopifyConfig{
			Domain:      getEnv("SHOPIFY_DOMAIN", "mock-domain.myshopify.com"),
			AccessToken: getEnv("SHOPIFY_STOREFRONT_ACCESS_TOKEN", "mock-token"),
			APIVersion:  getEnv("SHOPIFY_API_VERSION", "2023-10"),
			Timeout:     30 * time.Second,
		},
		SnapshotDir: getEnv("SNAPSHOT_DIR", "./data"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
