package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kjstillabower/ornithologist/internal/classify"
	"github.com/kjstillabower/ornithologist/internal/client"
	"github.com/kjstillabower/ornithologist/internal/models"
	"github.com/kjstillabower/ornithologist/internal/observability"
	"github.com/kjstillabower/ornithologist/internal/validation"
)

type call struct {
	city, countryCode, correlationID string
}

type mockWeatherClient struct {
	weather models.WeatherData
	err     error
	calls   []call
}

func (m *mockWeatherClient) FetchWeather(ctx context.Context, city, countryCode string) (models.WeatherData, error) {
	m.calls = append(m.calls, call{city, countryCode, observability.CorrelationID(ctx)})
	return m.weather, m.err
}

func austin() models.WeatherData {
	return models.WeatherData{
		Location:    "Austin",
		Conditions:  "clear sky",
		Temperature: 22.3,
		Humidity:    55.0,
		Pressure:    1013.2,
		WindSpeed:   3.4,
	}
}

func TestLookup_Success(t *testing.T) {
	mock := &mockWeatherClient{weather: austin()}
	svc := NewWeatherService(mock, zap.NewNop())
	before := testutil.ToFloat64(observability.LookupsTotal.WithLabelValues("success"))

	report, err := svc.Lookup(context.Background(), "  Austin ", " US ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if len(mock.calls) != 1 {
		t.Fatalf("client called %d times, want 1", len(mock.calls))
	}
	got := mock.calls[0]
	if got.city != "Austin" || got.countryCode != "US" {
		t.Errorf("client called with %q,%q, want trimmed Austin,US", got.city, got.countryCode)
	}
	if got.correlationID == "" {
		t.Error("lookup context carries no correlation ID")
	}
	if report.Temperature != classify.Warm {
		t.Errorf("Temperature = %v, want warm", report.Temperature)
	}
	if report.Condition != classify.Clear {
		t.Errorf("Condition = %v, want clear", report.Condition)
	}
	for _, s := range []string{"Austin", "clear sky", "22.3", "55.0", "1013.2", "3.4"} {
		if !strings.Contains(report.Text, s) {
			t.Errorf("report text %q missing %q", report.Text, s)
		}
	}
	if after := testutil.ToFloat64(observability.LookupsTotal.WithLabelValues("success")); after != before+1 {
		t.Errorf("LookupsTotal{success} = %v, want %v", after, before+1)
	}
}

func TestLookup_CorrelationIDPerLookup(t *testing.T) {
	mock := &mockWeatherClient{weather: austin()}
	svc := NewWeatherService(mock, nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.Lookup(context.Background(), "Austin", "US"); err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
	}
	if mock.calls[0].correlationID == mock.calls[1].correlationID {
		t.Error("two lookups share a correlation ID")
	}
}

func TestLookup_EmptyCitySkipsClient(t *testing.T) {
	mock := &mockWeatherClient{weather: austin()}
	svc := NewWeatherService(mock, zap.NewNop())
	before := testutil.ToFloat64(observability.LookupErrorsTotal.WithLabelValues("validation"))

	_, err := svc.Lookup(context.Background(), "  ", "US")
	if !errors.Is(err, validation.ErrLocationEmpty) {
		t.Errorf("Lookup() error = %v, want ErrLocationEmpty", err)
	}
	if len(mock.calls) != 0 {
		t.Errorf("client called %d times, want 0", len(mock.calls))
	}
	if after := testutil.ToFloat64(observability.LookupErrorsTotal.WithLabelValues("validation")); after != before+1 {
		t.Errorf("LookupErrorsTotal{validation} = %v, want %v", after, before+1)
	}
}

func TestLookup_SendsInputAsTyped(t *testing.T) {
	tests := []struct {
		name        string
		city        string
		countryCode string
	}{
		{"empty country", "Austin", ""},
		{"comma in city", "Washington, D.C.", "US"},
		{"parentheses in city", "Frankfurt (Oder)", "DE"},
		{"dotted country", "Austin", "U.S."},
		{"country name", "Austin", "United States"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockWeatherClient{weather: austin()}
			svc := NewWeatherService(mock, zap.NewNop())

			if _, err := svc.Lookup(context.Background(), tt.city, tt.countryCode); err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("client called %d times, want 1", len(mock.calls))
			}
			if got := mock.calls[0]; got.city != tt.city || got.countryCode != tt.countryCode {
				t.Errorf("client called with %q,%q, want %q,%q", got.city, got.countryCode, tt.city, tt.countryCode)
			}
		})
	}
}

func TestLookup_ClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category client.ErrorCategory
	}{
		{"transport", fmt.Errorf("%w: connection refused", client.ErrTransport), client.ErrorCategoryTransport},
		{"malformed", fmt.Errorf("%w: wind is missing or empty", client.ErrMalformedResponse), client.ErrorCategoryMalformedResponse},
		{"not found", client.ErrLocationNotFound, client.ErrorCategoryLocationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			mock := &mockWeatherClient{err: tt.err}
			svc := NewWeatherService(mock, zap.New(core))

			_, err := svc.Lookup(context.Background(), "Austin", "US")
			if !errors.Is(err, tt.err) {
				t.Fatalf("Lookup() error = %v, want wrapped %v", err, tt.err)
			}
			if !strings.Contains(err.Error(), "fetch weather for Austin,US") {
				t.Errorf("Lookup() error = %q, want lookup context", err.Error())
			}
			if len(mock.calls) != 1 {
				t.Errorf("client called %d times, want exactly 1", len(mock.calls))
			}

			entries := logs.FilterMessage("weather lookup failed").All()
			if len(entries) != 1 {
				t.Fatalf("got %d failure log entries, want 1", len(entries))
			}
			if got := entries[0].ContextMap()["category"]; got != string(tt.category) {
				t.Errorf("logged category = %v, want %v", got, tt.category)
			}
		})
	}
}

func TestNewReport_UnknownCondition(t *testing.T) {
	data := austin()
	data.Conditions = "light rain"
	data.Temperature = -4

	report := NewReport(data)
	if report.Condition != classify.Unknown {
		t.Errorf("Condition = %v, want unknown", report.Condition)
	}
	if report.Temperature != classify.Freezing {
		t.Errorf("Temperature = %v, want freezing", report.Temperature)
	}
}
