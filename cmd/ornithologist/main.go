package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kjstillabower/ornithologist/internal/cli"
	"github.com/kjstillabower/ornithologist/internal/client"
	"github.com/kjstillabower/ornithologist/internal/config"
	"github.com/kjstillabower/ornithologist/internal/observability"
	"github.com/kjstillabower/ornithologist/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}

	switch cfg.ColorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	ctx := context.Background()
	shutdownTracer, err := observability.InitTracing(ctx, cfg.ServiceName, cfg.TracingEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}

	session := cli.NewSession(os.Stdin, os.Stdout, os.Stderr, cli.Options{
		Continuous:    cfg.Continuous,
		DefaultAPIKey: cfg.WeatherAPIKey,
		Clock:         time.Now,
		Logger:        logger,
		Connect: func(apiKey string) (cli.Lookuper, error) {
			weatherClient, err := client.NewOpenWeatherClient(apiKey, cfg.WeatherAPIURL, cfg.WeatherAPITimeout)
			if err != nil {
				return nil, err
			}
			if cfg.RequestsPerMinute > 0 {
				weatherClient.SetRateLimiter(rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute))
			}
			return service.NewWeatherService(weatherClient, logger), nil
		},
	})

	code := 0
	if err := session.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := observability.FlushTelemetry(flushCtx, logger, observability.Telemetry{
		PushgatewayURL: cfg.PushgatewayURL,
		Job:            cfg.MetricsJob,
		ShutdownTracer: shutdownTracer,
	}); err != nil {
		logger.Debug("telemetry flush", zap.Error(err))
	}
	return code
}
