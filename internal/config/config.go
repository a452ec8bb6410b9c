// Package config loads runtime settings from a .env file, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/georgemunganga/vendor-panel/internal/modules/notify"
)

// Config holds the server settings.
type Config struct {
	Port                 string
	LogLevel             string
	SeedFile             string
	NotificationTTL      time.Duration
	NotificationCapacity int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:                 "8080",
		LogLevel:             "info",
		NotificationTTL:      notify.DefaultTTL,
		NotificationCapacity: notify.DefaultCapacity,
	}
}

// Load resolves configuration for args (without the program name).
// A missing .env file is not an error.
func Load(args []string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	flags := pflag.NewFlagSet("vendor-panel", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "path to a .env file")
	port := flags.String("port", "", "HTTP listen port (APP_PORT)")
	seedFile := flags.String("seed-file", "", "YAML vendor seed file (SEED_FILE)")
	logLevel := flags.String("log-level", "", "debug, info, warn or error (LOG_LEVEL)")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", *envFile, err)
		}
		logger.Debug("No env file found", slog.String("path", *envFile))
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return Config{}, err
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *seedFile != "" {
		cfg.SeedFile = *seedFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv reads settings through getenv, falling back to Default.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := getenv("APP_PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.SeedFile = getenv("SEED_FILE")

	if v := getenv("NOTIFICATION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTIFICATION_TTL: %w", err)
		}
		cfg.NotificationTTL = ttl
	}
	if v := getenv("NOTIFICATION_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NOTIFICATION_CAPACITY: %w", err)
		}
		cfg.NotificationCapacity = n
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("notification ttl must be positive, got %s", c.NotificationTTL)
	}
	if c.NotificationCapacity <= 0 {
		return fmt.Errorf("notification capacity must be positive, got %d", c.NotificationCapacity)
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q", name)
}
