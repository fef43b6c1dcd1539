package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func mapLookup(m map[string]string) lookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:8080", c.BackendURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, "libadmin.db", c.DBPath)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.CoalesceRefresh)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://lib:9000", "-t", "5", "-d", "/tmp/x.db", "-l", "debug"},
			want: func(c *Config) {
				c.BackendURL = "http://lib:9000"
				c.RequestTimeout = 5 * time.Second
				c.DBPath = "/tmp/x.db"
				c.LogLevel = "debug"
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-a=http://lib", "-x", "1"},
			want: func(c *Config) { c.BackendURL = "http://lib" },
		},
		{name: "no flags", args: nil, want: func(*Config) {}},
		{name: "bad timeout", args: []string{"-t", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaults()
			err := parseFlags(got, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	c := defaults()
	c.RequestTimeout = 1500 * time.Millisecond
	require.NoError(t, parseFlags(c, []string{"-l", "warn"}))
	assert.Equal(t, 1500*time.Millisecond, c.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	c := defaults()
	err := parseEnv(c, mapLookup(map[string]string{
		EnvBackendURL:      "http://env:1",
		EnvRequestTimeout:  "45s",
		EnvDBPath:          "env.db",
		EnvLogLevel:        "warn",
		EnvCoalesceRefresh: "true",
	}))
	require.NoError(t, err)

	want := defaults()
	want.BackendURL = "http://env:1"
	want.RequestTimeout = 45 * time.Second
	want.DBPath = "env.db"
	want.LogLevel = "warn"
	want.CoalesceRefresh = true
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseEnv_TimeoutSeconds(t *testing.T) {
	c := defaults()
	require.NoError(t, parseEnv(c, mapLookup(map[string]string{EnvRequestTimeout: "7"})))
	assert.Equal(t, 7*time.Second, c.RequestTimeout)
}

func TestParseEnv_Invalid(t *testing.T) {
	assert.Error(t, parseEnv(defaults(), mapLookup(map[string]string{EnvRequestTimeout: "soon"})))
	assert.Error(t, parseEnv(defaults(), mapLookup(map[string]string{EnvCoalesceRefresh: "maybe"})))
}

func TestParseEnv_EmptyValuesIgnored(t *testing.T) {
	c := defaults()
	require.NoError(t, parseEnv(c, mapLookup(map[string]string{EnvBackendURL: ""})))
	assert.Equal(t, defaults(), c)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, loadDotEnv(""))
	require.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIBADMIN_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("LIBADMIN_TEST_DOTENV", "")
	os.Unsetenv("LIBADMIN_TEST_DOTENV")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("LIBADMIN_TEST_DOTENV"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIBADMIN_TEST_KEEP=file\n"), 0o600))
	t.Setenv("LIBADMIN_TEST_KEEP", "process")

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "process", os.Getenv("LIBADMIN_TEST_KEEP"))
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"backend_url":      "http://json:2",
		"request_timeout":  "10s",
		"coalesce_refresh": true,
	})

	c := defaults()
	require.NoError(t, parseJSON(c, []string{"-config", path}))

	want := defaults()
	want.BackendURL = "http://json:2"
	want.RequestTimeout = 10 * time.Second
	want.CoalesceRefresh = true
	assert.Empty(t, cmp.Diff(want, c))
}

func TestParseJSON_NanosecondTimeout(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"request_timeout": 2000000000})

	c := defaults()
	require.NoError(t, parseJSON(c, []string{"-c", path}))
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestParseJSON_Errors(t *testing.T) {
	require.NoError(t, parseJSON(defaults(), nil))

	assert.Error(t, parseJSON(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	assert.Error(t, parseJSON(defaults(), []string{"-c", bad}))
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Setenv(EnvBackendURL, "http://env")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvDBPath, "env.db")
	path := writeTempJSON(t, map[string]any{"log_level": "error", "db_path": "json.db"})

	cfg, err := Load([]string{"-c", path, "-d", "flag.db"})
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.BackendURL)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "flag.db", cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
