package config

import "time"

// Config holds runtime settings for the libadmin CLI.
type Config struct {
	BackendURL     string
	RequestTimeout time.Duration
	DBPath         string
	LogLevel       string

	// CoalesceRefresh makes concurrent 401s share a single refresh call.
	CoalesceRefresh bool

	// EnvFile is the dotenv file read before the environment is parsed.
	EnvFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://localhost:8080"
	c.RequestTimeout = 30 * time.Second
	c.DBPath = "libadmin.db"
	c.LogLevel = "info"
	c.CoalesceRefresh = false
	c.EnvFile = ".env"
}

// Load builds a Config from defaults, the environment, the JSON file named
// in args and finally the flags in args. Later sources take precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(cfg.EnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, lookupEnv); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
