// Package config loads the settings of the apod command from an optional
// YAML file, a .env file and APOD_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"apod/pkg/consts"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Port      string `mapstructure:"port"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads the configuration. path may be empty, in which case only the
// environment and the defaults are used.
func Load(path string) (*Config, error) {

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(consts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{consts.KeyApiKey, consts.KeyBaseURL, consts.KeyLogLevel, consts.KeyLogFormat} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	// APP_PORT is what the service has always been deployed with
	if err := v.BindEnv(consts.KeyPort, "APOD_PORT", "APP_PORT"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(consts.KeyApiKey, "DEMO_KEY")
	v.SetDefault(consts.KeyBaseURL, consts.DefaultBaseURL)
	v.SetDefault(consts.KeyPort, "8080")
	v.SetDefault(consts.KeyLogLevel, "info")
	v.SetDefault(consts.KeyLogFormat, "json")
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return errors.New("api_key is required")
	}

	if cfg.BaseURL == "" {
		return errors.New("base_url is required")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}
