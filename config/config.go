package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config stores the scanner configuration.
type Config struct {
	RootDir  string // root of the music library to scan
	LogLevel string
	LogPath  string        // optional rotating log file
	Debounce time.Duration // quiet period before watch mode re-scans
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvDuration gets an environment variable as a duration or returns a
// default value.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or
// defaults. godotenv.Load does not override variables already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables and defaults.")
	}

	return &Config{
		RootDir:  os.Getenv("TUNESORT_ROOT"),
		LogLevel: getEnv("TUNESORT_LOG_LEVEL", "info"),
		LogPath:  os.Getenv("TUNESORT_LOG_FILE"),
		Debounce: getEnvDuration("TUNESORT_DEBOUNCE", 2*time.Second),
	}
}
