package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/libadmin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the library backend
//	-t int      request timeout in seconds
//	-d string   path of the local SQLite file
//	-l string   log level
//
// Only these flags are picked out of args, so flags owned by other parsers
// (such as -c) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.Pick(args, "-a", "-t", "-d", "-l")

	fs := flag.NewFlagSet("libadmin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BackendURL, "a", cfg.BackendURL, "base URL of the library backend")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
