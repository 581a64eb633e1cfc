package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultAPIURL = "http://api.openweathermap.org/data/2.5/weather"

// Config holds CLI configuration loaded from optional YAML files, .env and env.
type Config struct {
	// WeatherAPIKey is used when the user leaves the key prompt blank.
	WeatherAPIKey     string
	WeatherAPIURL     string
	WeatherAPITimeout time.Duration // 0 keeps the transport default
	RequestsPerMinute int           // 0 disables pacing

	Continuous bool
	ColorMode  string // "auto", "always" or "never"

	LogLevel string

	PushgatewayURL string
	MetricsJob     string

	TracingEndpoint string
	ServiceName     string
}

type fileConfig struct {
	WeatherAPI struct {
		URL               string `yaml:"url"`
		Timeout           string `yaml:"timeout"`
		RequestsPerMinute *int   `yaml:"requests_per_minute"`
	} `yaml:"weather_api"`

	Session struct {
		Continuous *bool  `yaml:"continuous"`
		Color      string `yaml:"color"`
	} `yaml:"session"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Metrics struct {
		PushgatewayURL string `yaml:"pushgateway_url"`
		Job            string `yaml:"job"`
	} `yaml:"metrics"`

	Tracing struct {
		OTLPEndpoint string `yaml:"otlp_endpoint"`
		ServiceName  string `yaml:"service_name"`
	} `yaml:"tracing"`
}

type secretsFile struct {
	WeatherAPIKey string `yaml:"weather_api_key"`
}

// Load reads configuration relative to the working directory. See LoadFrom.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: get working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom reads {dir}/.env, {dir}/config/{ENV_NAME}.yaml (default dev) and
// {dir}/config/secrets.yaml. Every file is optional; missing ones leave defaults.
// The API key comes from WEATHER_API_KEY (env or .env) before the secrets file.
func LoadFrom(dir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read .env file: %w", err)
	}

	env := os.Getenv("ENV_NAME")
	if env == "" {
		env = "dev"
	}

	var fc fileConfig
	configPath := filepath.Join(dir, "config", env+".yaml")
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{
		Continuous: true,
	}

	cfg.WeatherAPIKey = strings.TrimSpace(os.Getenv("WEATHER_API_KEY"))
	if cfg.WeatherAPIKey == "" {
		key, err := readSecrets(filepath.Join(dir, "config", "secrets.yaml"))
		if err != nil {
			return nil, err
		}
		cfg.WeatherAPIKey = key
	}

	cfg.WeatherAPIURL = strings.TrimSpace(fc.WeatherAPI.URL)
	if cfg.WeatherAPIURL == "" {
		cfg.WeatherAPIURL = defaultAPIURL
	}
	cfg.WeatherAPITimeout = parseDurationOrZero(fc.WeatherAPI.Timeout, 0)
	cfg.RequestsPerMinute = 60
	if fc.WeatherAPI.RequestsPerMinute != nil {
		cfg.RequestsPerMinute = *fc.WeatherAPI.RequestsPerMinute
	}

	if fc.Session.Continuous != nil {
		cfg.Continuous = *fc.Session.Continuous
	}
	cfg.ColorMode = strings.TrimSpace(strings.ToLower(fc.Session.Color))
	if cfg.ColorMode == "" {
		cfg.ColorMode = "auto"
	}

	cfg.LogLevel = fc.Log.Level

	cfg.PushgatewayURL = strings.TrimSpace(os.Getenv("PUSHGATEWAY_URL"))
	if cfg.PushgatewayURL == "" {
		cfg.PushgatewayURL = strings.TrimSpace(fc.Metrics.PushgatewayURL)
	}
	cfg.MetricsJob = fc.Metrics.Job
	if cfg.MetricsJob == "" {
		cfg.MetricsJob = "ornithologist"
	}

	cfg.TracingEndpoint = strings.TrimSpace(fc.Tracing.OTLPEndpoint)
	cfg.ServiceName = fc.Tracing.ServiceName
	if cfg.ServiceName == "" {
		cfg.ServiceName = "ornithologist"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readSecrets(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read secrets file: %w", err)
	}
	var sec secretsFile
	if err := yaml.Unmarshal(data, &sec); err != nil {
		return "", fmt.Errorf("parse secrets file: %w", err)
	}
	return strings.TrimSpace(sec.WeatherAPIKey), nil
}

// parseDurationOrZero parses a duration string, returning defaultVal on empty string or parse error.
// Returns zero or negative durations as-is (validate rejects negatives).
func parseDurationOrZero(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultVal
	}
	return d
}

// validate performs post-load validation of configuration values.
func validate(cfg *Config) error {
	if cfg.WeatherAPITimeout < 0 {
		return fmt.Errorf("weather_api.timeout must not be negative")
	}
	if cfg.RequestsPerMinute < 0 {
		return fmt.Errorf("weather_api.requests_per_minute must not be negative")
	}
	switch cfg.ColorMode {
	case "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("session.color must be auto, always or never, got %q", cfg.ColorMode)
	}
	return nil
}
