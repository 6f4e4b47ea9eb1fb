package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// DatabaseURL is a postgres DSN. When empty the server falls back to a
	// local sqlite file, which is intended for development only.
	DatabaseURL string
	SQLitePath  string
	DBMaxConns  int
	DBIdleConns int
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("MARKETPLACE_HTTP_ADDR", "0.0.0.0:8080"),
		LogLevel: EnvString("MARKETPLACE_LOG_LEVEL", "info"),

		ReadHeaderTimeout: EnvDuration("MARKETPLACE_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("MARKETPLACE_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("MARKETPLACE_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("MARKETPLACE_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("MARKETPLACE_HTTP_MAX_HEADER_BYTES", 1<<20),

		DatabaseURL: EnvString("MARKETPLACE_DATABASE_URL", ""),
		SQLitePath:  EnvString("MARKETPLACE_SQLITE_PATH", "marketplace.db"),
		DBMaxConns:  EnvInt("MARKETPLACE_DB_MAX_CONNS", 10),
		DBIdleConns: EnvInt("MARKETPLACE_DB_IDLE_CONNS", 5),
	}
}
