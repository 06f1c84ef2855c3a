package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MySQLDSN    string
	RedisAddr   string
	WorkerCount int
	QueueSize   int
	CatalogPath string
	LogLevel    string
}

// Load reads an optional .env file and then the environment. Variables that
// are already set win over the file.
func Load(envFiles ...string) *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	return &Config{
		HTTPAddr:    getEnvOrDefault("HTTP_ADDR", ":8080"),
		GRPCAddr:    getEnvOrDefault("GRPC_ADDR", ":50051"),
		MySQLDSN:    getEnvOrDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/storefront?parseTime=true"),
		RedisAddr:   getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		WorkerCount: getIntOrDefault("WORKER_COUNT", 10),
		QueueSize:   getIntOrDefault("QUEUE_SIZE", 10000),
		CatalogPath: os.Getenv("CATALOG_PATH"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return defaultValue
}
