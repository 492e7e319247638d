package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel string
	JSONLog  bool

	// Filtering
	Format  string
	Filter  string
	EnvFile string
}

// Load builds a Config by combining defaults, an optional .env file, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel: DefaultLogLevel,
		JSONLog:  DefaultJSONLog,
		Format:   DefaultFormat,
		Filter:   DefaultFilter,
	}

	envFile := getenv(EnvPrefix+"ENV_FILE", "")
	if cmd != nil {
		if s := flagString(cmd, "env-file"); s != "" {
			envFile = s
		}
	}
	if err := loadEnvFile(envFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	cfg.EnvFile = envFile

	cfg.LogLevel = strings.ToLower(getenv(EnvPrefix+"LOG_LEVEL", cfg.LogLevel))
	cfg.JSONLog = getenvBool(EnvPrefix+"JSON_LOG", cfg.JSONLog)
	cfg.Format = strings.ToLower(getenv(EnvPrefix+"FORMAT", cfg.Format))
	cfg.Filter = getenv(EnvPrefix+"FILTER", cfg.Filter)

	if cmd != nil {
		if s := flagString(cmd, "format"); s != "" {
			cfg.Format = strings.ToLower(s)
		}
		if s := flagString(cmd, "filter"); s != "" {
			cfg.Filter = s
		}
		if flagString(cmd, "json") == "true" {
			cfg.JSONLog = true
		}
		if flagString(cmd, "quiet") == "true" {
			cfg.LogLevel = "error"
		}
		if flagString(cmd, "verbose") == "true" {
			cfg.LogLevel = "debug"
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. An empty path loads ./.env if present.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		path = DefaultEnvFile
	}
	return godotenv.Load(path)
}

func flagString(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
