package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables under the given prefix
// (e.g. "ACCOUNTSVC" yields ACCOUNTSVC_SERVER_PORT, ACCOUNTSVC_DATABASE_URL).
// Environment variables take precedence over values from an optional
// config.yaml in the working directory.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(prefix string) (*Config, error) {
	v := viper.New()

	// Defaults for settings with a sensible out-of-the-box value.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("peer.timeout_seconds", 0)

	// Optional config file; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables: PREFIX_SECTION_KEY, e.g. ACCOUNTSVC_DATABASE_URL.
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicitly so AutomaticEnv sees keys that have no default.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"peer.base_url",
		"peer.timeout_seconds",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
