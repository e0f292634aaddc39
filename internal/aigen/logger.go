package aigen

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LogEntry is one observability record per orchestration outcome.
type LogEntry struct {
	ID           uuid.UUID  `json:"log_id"`
	Provider     Provider   `json:"provider"`
	Topic        string     `json:"topic"`
	Difficulty   Difficulty `json:"difficulty"`
	Level        Level      `json:"level"`
	Count        int        `json:"count"`
	Success      bool       `json:"success"`
	FallbackUsed bool       `json:"fallback_used"`
	DurationMs   int64      `json:"duration_ms"`
	ErrorKind    string     `json:"error_kind,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// LogSink persists generation log entries. Record is always invoked from a
// fire-and-forget dispatch: its error is observed by the orchestrator's
// diagnostic logger only and never reaches the caller.
type LogSink interface {
	Record(ctx context.Context, entry LogEntry) error
}

const logErrorLimit = 500

func newLogEntry(req GenerationRequest, p Provider, fallbackUsed bool, duration time.Duration, err error) LogEntry {
	entry := LogEntry{
		ID:           uuid.New(),
		Provider:     p,
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		Level:        req.Level,
		Count:        req.Count,
		Success:      err == nil,
		FallbackUsed: fallbackUsed,
		DurationMs:   duration.Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}
	if err != nil {
		entry.ErrorKind = string(KindOf(err))
		entry.ErrorMessage = truncate(err.Error(), logErrorLimit)
	}
	return entry
}
