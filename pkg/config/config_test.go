package config

import (
	"os"
	"path/filepath"
	"testing"

	"apod/pkg/consts"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"APOD_API_KEY", "APOD_BASE_URL", "APOD_PORT", "APP_PORT", "APOD_LOG_LEVEL", "APOD_LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, &Config{
		APIKey:    "DEMO_KEY",
		BaseURL:   consts.DefaultBaseURL,
		Port:      "8080",
		LogLevel:  "info",
		LogFormat: "json",
	}, cfg)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APOD_API_KEY", "my_key")
	t.Setenv("APOD_BASE_URL", "http://localhost:9999/apod")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APOD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "my_key", cfg.APIKey)
	require.Equal(t, "http://localhost:9999/apod", cfg.BaseURL)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: from_file\nlog_format: text\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from_file", cfg.APIKey)
	require.Equal(t, "text", cfg.LogFormat)

	// the environment wins over the file
	t.Setenv("APOD_API_KEY", "from_env")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "from_env", cfg.APIKey)
}

func TestLoadInvalid(t *testing.T) {

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad level", env: map[string]string{"APOD_LOG_LEVEL": "loud"}},
		{name: "bad format", env: map[string]string{"APOD_LOG_FORMAT": "xml"}},
		{name: "blank key", env: map[string]string{"APOD_API_KEY": "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
