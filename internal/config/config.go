package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Supported persistence backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

const defaultAPIToken = "dev-token"

type Config struct {
	// Persistence
	DataBackend     string
	SQLiteDBPath    string
	PostgresConnStr string

	// Local API
	GRPCAddr string
	APIToken string

	// Logging
	LogLevel  string
	LogFormat string

	// Presentation
	Currency             string
	SnapshotDisplayLimit int
}

// Load reads the configuration from the environment.
// A .env file in the working directory is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataBackend:     getEnv("DATA_BACKEND", BackendSQLite),
		SQLiteDBPath:    getEnv("SQLITE_DB_PATH", defaultSQLitePath()),
		PostgresConnStr: postgresConnStr(),

		GRPCAddr: getEnv("GRPC_ADDR", "127.0.0.1:8080"),
		APIToken: getEnv("API_TOKEN", defaultAPIToken),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		Currency:             strings.ToUpper(getEnv("CURRENCY", money.USD)),
		SnapshotDisplayLimit: getEnvInt("SNAPSHOT_DISPLAY_LIMIT", 5),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{BackendMemory, BackendSQLite, BackendPostgres}
	if !slices.Contains(validBackends, c.DataBackend) {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == BackendSQLite && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.DataBackend == BackendPostgres && c.PostgresConnStr == "" {
		errors = append(errors, "PostgreSQL connection string cannot be empty when using postgres backend")
	}

	if _, _, err := net.SplitHostPort(c.GRPCAddr); err != nil {
		errors = append(errors, fmt.Sprintf("invalid gRPC address '%s': %v", c.GRPCAddr, err))
	}

	if c.APIToken == "" {
		errors = append(errors, "API token cannot be empty")
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if money.GetCurrency(c.Currency) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency code '%s'", c.Currency))
	}

	if c.SnapshotDisplayLimit < 1 {
		errors = append(errors, fmt.Sprintf("invalid snapshot display limit %d: must be at least 1", c.SnapshotDisplayLimit))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// postgresConnStr returns DB_CONN_STR, or builds it from the individual
// DB_* variables (Docker friendly)
func postgresConnStr() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "networth")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func defaultSQLitePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "networth", "networth.db")
	}
	return "./data/networth.db"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
