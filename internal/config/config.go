package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	linkedin "github.com/edgee-cloud/linkedin-capi-go"
	"github.com/edgee-cloud/linkedin-capi-go/adapters"
)

// Config aggregates the CLI host configuration.
type Config struct {
	AccessToken string
	Endpoint    string
	APIVersion  string
	Rules       linkedin.ValidationRules
	LogLevel    adapters.LogLevel
	HTTPTimeout time.Duration
}

const (
	defaultLogLevel    = adapters.LogLevelWarn
	defaultHTTPTimeout = 10 * time.Second
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		AccessToken: os.Getenv("LINKEDIN_ACCESS_TOKEN"),
		Endpoint:    valueOrDefault("LINKEDIN_ENDPOINT", linkedin.DefaultEndpoint),
		APIVersion:  valueOrDefault("LINKEDIN_API_VERSION", linkedin.DefaultAPIVersion),
		LogLevel:    adapters.ParseLogLevel(os.Getenv("LOG_LEVEL"), defaultLogLevel),
		HTTPTimeout: defaultHTTPTimeout,
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	switch v := os.Getenv("LINKEDIN_CLICK_ID_POLICY"); v {
	case "", "always":
		cfg.Rules.ClickID = linkedin.ClickIDAlwaysEmit
	case "omit":
		cfg.Rules.ClickID = linkedin.ClickIDOmitWhenAbsent
	default:
		return Config{}, fmt.Errorf("invalid LINKEDIN_CLICK_ID_POLICY %q: want always or omit", v)
	}

	require, err := parseBoolWithDefault("LINKEDIN_REQUIRE_USER_PROPERTIES", false)
	if err != nil {
		return Config{}, err
	}
	cfg.Rules.RequireUserProperties = require

	return cfg, nil
}

// Settings returns the component settings the host passes on every call.
func (c Config) Settings() linkedin.Dict {
	if c.AccessToken == "" {
		return linkedin.Dict{}
	}
	return linkedin.Dict{{linkedin.AccessTokenSetting, c.AccessToken}}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	val, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return val, nil
}
