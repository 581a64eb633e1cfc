package observability

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Telemetry holds what needs flushing at exit.
type Telemetry struct {
	PushgatewayURL string
	Job            string
	ShutdownTracer func(context.Context) error
}

// FlushTelemetry pushes metrics, shuts the tracer down and syncs the logger.
// Every step runs; errors are joined.
func FlushTelemetry(ctx context.Context, logger *zap.Logger, t Telemetry) error {
	var errs []error
	if err := PushMetrics(ctx, t.PushgatewayURL, t.Job); err != nil {
		errs = append(errs, err)
	}
	if t.ShutdownTracer != nil {
		if err := t.ShutdownTracer(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer: %w", err))
		}
	}
	if logger != nil {
		if err := logger.Sync(); err != nil {
			errs = append(errs, fmt.Errorf("flush logs: %w", err))
		}
	}
	return errors.Join(errs...)
}
