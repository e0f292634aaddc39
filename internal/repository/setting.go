package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quybuiquang/skill-quest-cafe/pkg/model"
)

var ErrSettingNotFound = errors.New("ai setting not found")

// SettingRepository holds the single-row admin preference for the default
// AI provider.
type SettingRepository struct {
	db *pgxpool.Pool
}

func (r *SettingRepository) Get(ctx context.Context) (*model.AISetting, error) {
	const q = `SELECT default_provider, updated_at FROM ai_settings WHERE id = 1`

	var s model.AISetting
	if err := r.db.QueryRow(ctx, q).Scan(&s.DefaultProvider, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("get ai setting: %w", err)
	}
	return &s, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, defaultProvider string) error {
	const q = `
INSERT INTO ai_settings (id, default_provider, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE SET default_provider = EXCLUDED.default_provider, updated_at = now()
`
	if _, err := r.db.Exec(ctx, q, defaultProvider); err != nil {
		return fmt.Errorf("upsert ai setting: %w", err)
	}
	return nil
}
