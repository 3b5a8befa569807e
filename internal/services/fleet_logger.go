package services

import (
	"context"
	"time"

	"fleettrack/internal/models"

	"go.uber.org/zap"
)

const (
	// RedactedValue masks free-text search input, which may hold customer names or emails
	RedactedValue = "***REDACTED***"
)

type traceIDKey struct{}

// WithTraceID stores the request trace id for log correlation
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id stored by WithTraceID
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// FleetLogger provides structured logging for fleet list operations
type FleetLogger struct {
	logger *zap.Logger
}

// NewFleetLogger creates a new fleet logger
func NewFleetLogger(logger *zap.Logger) FleetLoggerInterface {
	return &FleetLogger{
		logger: logger,
	}
}

func (fl *FleetLogger) LogListStarted(ctx context.Context, entity string, criteria models.FilterCriteria) {
	search := ""
	if criteria.SearchTerm != "" {
		search = RedactedValue
	}
	fl.logger.Info("list started",
		zap.String("event_type", "list_started"),
		zap.String("entity", entity),
		zap.String("search", search),
		zap.String("status_filter", criteria.StatusFilter),
		zap.Time("timestamp", time.Now()),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (fl *FleetLogger) LogListCompleted(ctx context.Context, entity string, total, matched int, durationMs int64) {
	fl.logger.Info("list completed",
		zap.String("event_type", "list_completed"),
		zap.String("entity", entity),
		zap.Int("total", total),
		zap.Int("matched", matched),
		zap.Int64("duration_ms", durationMs),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (fl *FleetLogger) LogListFailed(ctx context.Context, entity string, errorMsg string, durationMs int64) {
	fl.logger.Warn("list failed",
		zap.String("event_type", "list_failed"),
		zap.String("entity", entity),
		zap.String("error", errorMsg),
		zap.Int64("duration_ms", durationMs),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (fl *FleetLogger) LogRecordNotFound(ctx context.Context, entity string, code string) {
	fl.logger.Info("record not found",
		zap.String("event_type", "record_not_found"),
		zap.String("entity", entity),
		zap.String("id", code),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogValidationFailure logs rejected input
func (fl *FleetLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	fl.logger.Warn("validation failure",
		zap.String("event_type", "validation_failure"),
		zap.String("operation", operation),
		zap.String("error", errorMsg),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (fl *FleetLogger) LogExportCompleted(ctx context.Context, entity string, format string, rows int) {
	fl.logger.Info("export completed",
		zap.String("event_type", "export_completed"),
		zap.String("entity", entity),
		zap.String("format", format),
		zap.Int("rows", rows),
		zap.String("trace_id", TraceIDFromContext(ctx)),
	)
}
