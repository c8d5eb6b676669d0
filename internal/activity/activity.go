// Package activity records user/job events in a fire-and-forget sink.
// Delivery failures are logged and never returned to the caller.
package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event types emitted by the job service.
const (
	EventJobViewed     = "job_viewed"
	EventJobApplied    = "job_applied"
	EventSearchRun     = "search_run"
	EventRecommended   = "recommendations_served"
	EventJobDeactivate = "job_deactivated"
)

// Event is one activity record.
type Event struct {
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id,omitempty"`
	JobID      uuid.UUID `json:"job_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink accepts events. Implementations must not block the caller on
// delivery.
type Sink interface {
	Record(ctx context.Context, ev Event)
}

// LogSink writes events to the structured log. It stands in for the
// external activity service in local runs and tests.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink builds a Sink over the given logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Record logs the event. Never fails.
func (s *LogSink) Record(_ context.Context, ev Event) {
	s.logger.Info("activity",
		zap.String("type", ev.Type),
		zap.String("user_id", idOrEmpty(ev.UserID)),
		zap.String("job_id", idOrEmpty(ev.JobID)),
		zap.String("detail", ev.Detail),
		zap.Time("occurred_at", ev.OccurredAt),
	)
}

func idOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
