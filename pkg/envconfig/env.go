package envconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"chaibisket/pkg/logger"
)

// LoadEnvFile loads environment variables from the given .env file.
// A missing file is not fatal; every setting has a default.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// GetEnv returns the value of the environment variable or the fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable or the fallback.
func GetEnvInt(key string, fallback int) int {
	if value := GetEnv(key, ""); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetEnvBool returns the boolean value of the environment variable or the fallback.
func GetEnvBool(key string, fallback bool) bool {
	if value := GetEnv(key, ""); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetLogLevel reads LOG_LEVEL and maps it to a logger level, defaulting to info.
func GetLogLevel() logger.LogLevel {
	switch GetEnv("LOG_LEVEL", "info") {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}
