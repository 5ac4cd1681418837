package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string

	// Catalog Configuration
	MovieDataPath string

	// Trend Aggregation Configuration
	TrendWindowDays int    // default order window, in days
	TrendTopLimit   int    // size of the top-trends report
	ExportFile      string // default marker export destination
}

var AppConfig *Config

func LoadConfig() *Config {
	// Load .env file if exists
	_ = godotenv.Load()

	AppConfig = &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DB_PATH", "moviesstore.db"),
		MovieDataPath:   getEnv("MOVIE_DATA_PATH", "movie_data.json"),
		TrendWindowDays: getEnvInt("TREND_WINDOW_DAYS", 30),
		TrendTopLimit:   getEnvInt("TREND_TOP_LIMIT", 10),
		ExportFile:      getEnv("EXPORT_FILE", "movie_trends.json"),
	}

	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
