package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quybuiquang/skill-quest-cafe/internal/aigen"
)

// GenerationLogRepository is the persistent sink behind aigen.LogSink.
// Writes happen on the orchestrator's fire-and-forget path; a failed insert
// is reported to the orchestrator's diagnostic logger and nowhere else.
type GenerationLogRepository struct {
	db *pgxpool.Pool
}

func (r *GenerationLogRepository) Record(ctx context.Context, entry aigen.LogEntry) error {
	const q = `
INSERT INTO ai_generation_logs
  (log_id, provider, topic, difficulty, level, question_count, success, fallback_used, duration_ms, error_kind, error_message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	_, err := r.db.Exec(ctx, q,
		entry.ID, entry.Provider, entry.Topic, entry.Difficulty, entry.Level,
		entry.Count, entry.Success, entry.FallbackUsed, entry.DurationMs,
		entry.ErrorKind, entry.ErrorMessage, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert generation log: %w", err)
	}
	return nil
}

func (r *GenerationLogRepository) List(ctx context.Context, page, pageSize int) ([]aigen.LogEntry, int, error) {
	const q = `
SELECT log_id, provider, topic, difficulty, level, question_count, success, fallback_used, duration_ms, error_kind, error_message, created_at,
       count(*) OVER() AS total
FROM ai_generation_logs
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`
	rows, err := r.db.Query(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("query generation logs: %w", err)
	}
	defer rows.Close()

	var out []aigen.LogEntry
	var total int
	for rows.Next() {
		var e aigen.LogEntry
		if err := rows.Scan(&e.ID, &e.Provider, &e.Topic, &e.Difficulty, &e.Level, &e.Count, &e.Success, &e.FallbackUsed, &e.DurationMs, &e.ErrorKind, &e.ErrorMessage, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan generation log: %w", err)
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}
