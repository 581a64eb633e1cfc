package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/kjstillabower/ornithologist/internal/classify"
	"github.com/kjstillabower/ornithologist/internal/client"
	"github.com/kjstillabower/ornithologist/internal/models"
	"github.com/kjstillabower/ornithologist/internal/observability"
	"github.com/kjstillabower/ornithologist/internal/present"
	"github.com/kjstillabower/ornithologist/internal/validation"
)

// Report is a successful lookup together with its classification and the
// rendered block ready to print.
type Report struct {
	Data        models.WeatherData
	Temperature classify.Temperature
	Condition   classify.Condition
	Text        string
}

// NewReport classifies and renders a payload.
func NewReport(data models.WeatherData) Report {
	return Report{
		Data:        data,
		Temperature: classify.TemperatureCategory(data.Temperature),
		Condition:   classify.ConditionCategory(data.Conditions),
		Text:        present.Render(data),
	}
}

// WeatherService validates user input, performs one provider call per lookup
// and turns the payload into a Report.
type WeatherService struct {
	client client.WeatherClient
	logger *zap.Logger
}

// NewWeatherService creates a WeatherService.
func NewWeatherService(client client.WeatherClient, logger *zap.Logger) *WeatherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherService{
		client: client,
		logger: logger,
	}
}

// Lookup fetches and classifies the current weather for city in countryCode.
// Only an empty city is rejected locally; anything else goes to the provider
// as typed. Failures are returned and never retried.
func (s *WeatherService) Lookup(ctx context.Context, city, countryCode string) (Report, error) {
	city, err := validation.ValidateLocation(city)
	if err != nil {
		return Report{}, s.fail(ctx, err)
	}
	countryCode = validation.NormalizeCountryCode(countryCode)

	corrID := uuid.NewString()
	ctx = observability.WithCorrelationID(ctx, corrID)
	ctx, span := observability.Tracer().Start(ctx, "weather.lookup",
		trace.WithAttributes(
			attribute.String("weather.city", city),
			attribute.String("weather.country_code", countryCode),
			attribute.String("correlation_id", corrID),
		),
	)
	defer span.End()

	logger := s.logger.With(zap.String("correlation_id", corrID), zap.String("city", city), zap.String("country_code", countryCode))
	start := time.Now()

	data, err := s.client.FetchWeather(ctx, city, countryCode)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(client.CategorizeError(err)))
		return Report{}, s.fail(ctx, fmt.Errorf("fetch weather for %s,%s: %w", city, countryCode, err))
	}

	report := NewReport(data)
	observability.LookupsTotal.WithLabelValues("success").Inc()
	observability.ConditionCategoryTotal.WithLabelValues(report.Condition.String()).Inc()
	span.SetAttributes(
		attribute.String("weather.condition", report.Condition.String()),
		attribute.String("weather.temperature_band", report.Temperature.String()),
	)
	if report.Condition == classify.Unknown {
		logger.Debug("condition outside known vocabulary", zap.String("conditions", data.Conditions))
	}
	logger.Debug("weather served", zap.String("location", data.Location), zap.Duration("duration", time.Since(start)))
	return report, nil
}

func (s *WeatherService) fail(ctx context.Context, err error) error {
	category := client.CategorizeError(err)
	observability.LookupsTotal.WithLabelValues("error").Inc()
	observability.LookupErrorsTotal.WithLabelValues(string(category)).Inc()
	s.logger.Warn("weather lookup failed",
		zap.String("correlation_id", observability.CorrelationID(ctx)),
		zap.String("category", string(category)),
		zap.Error(err),
	)
	return err
}
