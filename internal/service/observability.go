package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dotori/internal/logger"
)

// UseCaseEvent captures lightweight execution telemetry for an advisor call.
type UseCaseEvent struct {
	Name      string
	RunID     string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    logger.Fields
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	log logger.Logger
}

// NewLogUseCaseObserver writes use-case events to log at info level, or at
// error level for failed calls.
func NewLogUseCaseObserver(log logger.Logger) UseCaseObserver {
	if log == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{log: log}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make(logger.Fields, len(event.Fields)+4)
	for k, v := range event.Fields {
		fields[k] = v
	}
	fields["use_case"] = event.Name
	fields["run_id"] = event.RunID
	fields["duration_ms"] = event.Duration.Milliseconds()
	fields["success"] = event.Success
	if event.Err != nil {
		o.log.WithError(event.Err).Error("service_use_case", fields)
		return
	}
	o.log.Info("service_use_case", fields)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
