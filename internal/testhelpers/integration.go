//go:build integration
// +build integration

package testhelpers

import (
	"os"
	"testing"
	"time"

	"github.com/kjstillabower/ornithologist/internal/client"
	"github.com/kjstillabower/ornithologist/internal/observability"
	"github.com/kjstillabower/ornithologist/internal/service"
)

// IntegrationTestConfig holds configuration for integration tests.
type IntegrationTestConfig struct {
	APIKey string
	APIURL string
}

// GetIntegrationConfig loads integration test configuration from environment.
// Skips test if WEATHER_API_KEY is not set.
func GetIntegrationConfig(t *testing.T) IntegrationTestConfig {
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		t.Skip("WEATHER_API_KEY not set, skipping integration test")
	}

	apiURL := os.Getenv("WEATHER_API_URL")
	if apiURL == "" {
		apiURL = client.DefaultAPIURL
	}

	return IntegrationTestConfig{
		APIKey: apiKey,
		APIURL: apiURL,
	}
}

// SetupIntegrationClient creates a weather client against the live provider.
func SetupIntegrationClient(t *testing.T, cfg IntegrationTestConfig) *client.OpenWeatherClient {
	weatherClient, err := client.NewOpenWeatherClient(cfg.APIKey, cfg.APIURL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewOpenWeatherClient() error = %v", err)
	}
	return weatherClient
}

// SetupIntegrationService creates a WeatherService backed by the live provider.
func SetupIntegrationService(t *testing.T, cfg IntegrationTestConfig) *service.WeatherService {
	logger, err := observability.NewLogger("debug")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	return service.NewWeatherService(SetupIntegrationClient(t, cfg), logger)
}
