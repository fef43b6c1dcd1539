package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvBackendURL      = "LIBADMIN_BACKEND_URL"
	EnvRequestTimeout  = "LIBADMIN_REQUEST_TIMEOUT"
	EnvDBPath          = "LIBADMIN_DB_PATH"
	EnvLogLevel        = "LIBADMIN_LOG_LEVEL"
	EnvCoalesceRefresh = "LIBADMIN_COALESCE_REFRESH"
)

type lookupFunc func(key string) (string, bool)

var lookupEnv lookupFunc = os.LookupEnv

// loadDotEnv merges path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays cfg with LIBADMIN_* variables reported by lookup.
// The timeout accepts a Go duration ("45s") or a number of seconds.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup(EnvBackendURL); ok && v != "" {
		cfg.BackendURL = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvCoalesceRefresh); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCoalesceRefresh, err)
		}
		cfg.CoalesceRefresh = b
	}
	return nil
}

func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
