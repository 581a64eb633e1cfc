package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"golang.org/x/time/rate"

	"github.com/kjstillabower/ornithologist/internal/models"
	"github.com/kjstillabower/ornithologist/internal/observability"
)

// DefaultAPIURL is the OpenWeatherMap current-weather endpoint.
const DefaultAPIURL = "http://api.openweathermap.org/data/2.5/weather"

type WeatherClient interface {
	FetchWeather(ctx context.Context, city, countryCode string) (models.WeatherData, error)
}

var (
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidAPIKey     = errors.New("invalid API key")
	ErrLocationNotFound  = errors.New("location not found")
	ErrUpstreamFailure   = errors.New("upstream failure")
	ErrRateLimited       = errors.New("rate limited")
)

// OpenWeatherClient performs exactly one GET per FetchWeather call. There is no
// retry; callers decide what to do with a failed lookup.
type OpenWeatherClient struct {
	apiKey  string
	apiURL  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewOpenWeatherClient creates a client for apiURL. A zero timeout keeps the
// transport default.
func NewOpenWeatherClient(apiKey, apiURL string, timeout time.Duration) (*OpenWeatherClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidAPIKey)
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &OpenWeatherClient{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SetRateLimiter paces outgoing requests. FetchWeather waits for a token before
// each request; it never drops a lookup.
func (c *OpenWeatherClient) SetRateLimiter(l *rate.Limiter) {
	c.limiter = l
}

func (c *OpenWeatherClient) FetchWeather(ctx context.Context, city, countryCode string) (models.WeatherData, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return models.WeatherData{}, fmt.Errorf("%w: rate limiter: %w", ErrTransport, err)
		}
	}

	start := time.Now()

	req, err := c.buildRequest(ctx, city, countryCode)
	if err != nil {
		observability.WeatherAPICallsTotal.WithLabelValues("error").Inc()
		return models.WeatherData{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observability.WeatherAPICallsTotal.WithLabelValues("error").Inc()
		observability.WeatherAPIDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return models.WeatherData{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	status := statusLabel(resp.StatusCode)
	observability.WeatherAPICallsTotal.WithLabelValues(status).Inc()
	observability.WeatherAPIDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	if err := handleErrorResponse(resp); err != nil {
		return models.WeatherData{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherData{}, fmt.Errorf("%w: read response body: %w", ErrTransport, err)
	}

	return ParseResponse(body)
}

func (c *OpenWeatherClient) buildRequest(ctx context.Context, city, countryCode string) (*http.Request, error) {
	baseURL, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	params := url.Values{}
	params.Set("q", city+","+countryCode)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)
	baseURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if corrID := observability.CorrelationID(ctx); corrID != "" {
		req.Header.Set("X-Correlation-ID", corrID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return req, nil
}

func handleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: provider rejected the key", ErrInvalidAPIKey)
	case http.StatusNotFound:
		return fmt.Errorf("%w", ErrLocationNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w", ErrRateLimited)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d", ErrUpstreamFailure, resp.StatusCode)
	}

	return nil
}

func statusLabel(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "success"
	}
	if statusCode == 429 {
		return "rate_limited"
	}
	if statusCode >= 400 && statusCode < 500 {
		return "client_error"
	}
	if statusCode >= 500 {
		return "server_error"
	}
	return "error"
}
