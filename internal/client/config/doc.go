// Package config loads runtime configuration for the libadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed LIBADMIN_, optionally seeded from a
//     .env file (see parseEnv). Variables already set in the process
//     environment win over the file.
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the library backend
//	-t int      request timeout (seconds)
//	-d string   path of the local SQLite file
//	-l string   log level: debug, info, warn or error
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "backend_url": "http://localhost:8080",
//	  "request_timeout": "30s",
//	  "db_path": "libadmin.db",
//	  "log_level": "info",
//	  "coalesce_refresh": false
//	}
package config
