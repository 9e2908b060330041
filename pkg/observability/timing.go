package observability

import (
	"context"
	"log/slog"
	"time"
)

// Timer tracks the duration of an operation.
type Timer struct {
	operation string
	start     time.Time
	logger    *slog.Logger
}

// StartTimer creates a new timer for the given operation.
func StartTimer(operation string) *Timer {
	return &Timer{
		operation: operation,
		start:     time.Now(),
	}
}

// WithLogger adds a logger to the timer for automatic logging on stop.
func (t *Timer) WithLogger(logger *slog.Logger) *Timer {
	t.logger = logger
	return t
}

// Stop logs the outcome at debug level, or at warn when err is set, and
// returns the elapsed duration.
func (t *Timer) Stop(ctx context.Context, err error) time.Duration {
	duration := time.Since(t.start)
	if t.logger == nil {
		return duration
	}

	if err != nil {
		t.logger.WarnContext(ctx, "operation failed",
			OperationKey, t.operation,
			DurationKey, duration.Milliseconds(),
			ErrorKey, err.Error(),
		)
	} else {
		t.logger.DebugContext(ctx, "operation completed",
			OperationKey, t.operation,
			DurationKey, duration.Milliseconds(),
		)
	}
	return duration
}

// TimeOperation runs fn and logs how long it took.
func TimeOperation(ctx context.Context, logger *slog.Logger, operation string, fn func(ctx context.Context) error) error {
	timer := StartTimer(operation).WithLogger(logger)
	err := fn(ctx)
	timer.Stop(ctx, err)
	return err
}
