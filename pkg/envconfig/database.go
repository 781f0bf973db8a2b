package envconfig

import (
	"time"

	"chaibisket/pkg/database"
)

// LoadDatabaseConfig loads database configuration from environment variables.
// Only used when the postgres storage driver is selected.
func LoadDatabaseConfig() database.Config {
	config := database.DefaultConfig()

	if host := GetEnv("DB_HOST", ""); host != "" {
		config.Host = host
	}

	if port := GetEnvInt("DB_PORT", 0); port > 0 {
		config.Port = port
	}

	if user := GetEnv("DB_USER", ""); user != "" {
		config.User = user
	}

	if password := GetEnv("DB_PASSWORD", ""); password != "" {
		config.Password = password
	}

	if dbname := GetEnv("DB_NAME", ""); dbname != "" {
		config.DBName = dbname
	}

	if sslmode := GetEnv("DB_SSL_MODE", ""); sslmode != "" {
		config.SSLMode = sslmode
	}

	// Connection pool settings
	if maxOpenConns := GetEnvInt("DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		config.MaxOpenConns = maxOpenConns
	}

	if maxIdleConns := GetEnvInt("DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		config.MaxIdleConns = maxIdleConns
	}

	if connMaxLifetimeStr := GetEnv("DB_CONN_MAX_LIFETIME", ""); connMaxLifetimeStr != "" {
		if connMaxLifetime, err := time.ParseDuration(connMaxLifetimeStr); err == nil {
			config.ConnMaxLifetime = connMaxLifetime
		}
	}

	if connMaxIdleTimeStr := GetEnv("DB_CONN_MAX_IDLE_TIME", ""); connMaxIdleTimeStr != "" {
		if connMaxIdleTime, err := time.ParseDuration(connMaxIdleTimeStr); err == nil {
			config.ConnMaxIdleTime = connMaxIdleTime
		}
	}

	return config
}
