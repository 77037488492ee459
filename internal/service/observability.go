package service

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// LogOptions configures the log-backed observer.
type LogOptions struct {
	Level  string // debug, info, warn, error
	Format string // text, json, logfmt
}

type logUseCaseObserver struct {
	logger *log.Logger
}

// NewLogUseCaseObserver writes service use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer, opts LogOptions) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: log.NewWithOptions(w, log.Options{
			Level:           ParseLogLevel(opts.Level),
			Formatter:       ParseLogFormatter(opts.Format),
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "wbs",
		}),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("service_use_case", attrs...)
		return
	}
	o.logger.Info("service_use_case", attrs...)
}

// ParseLogLevel maps a level name to a log.Level, defaulting to info.
func ParseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseLogFormatter maps a formatter name to a log.Formatter, defaulting to text.
func ParseLogFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
