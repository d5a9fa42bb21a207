package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
)

var _ repository.WatermarkRepository = (*WatermarkRepo)(nil)

// WatermarkRepo persiste las marcas de notificación en la tabla watermarks.
type WatermarkRepo struct {
	q Querier
}

func NewWatermarkRepository(q Querier) *WatermarkRepo {
	return &WatermarkRepo{q: q}
}

// Get devuelve (nil, nil) si el ámbito no tiene marca.
func (r *WatermarkRepo) Get(ctx context.Context, scope string) (*entity.Watermark, error) {
	var w entity.Watermark
	err := r.q.QueryRow(ctx,
		`SELECT last_seen_at, last_seen_id FROM watermarks WHERE scope = $1`, scope,
	).Scan(&w.LastSeenAt, &w.LastSeenID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get watermark: %w", err)
	}
	return &w, nil
}

func (r *WatermarkRepo) Save(ctx context.Context, scope string, w entity.Watermark) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO watermarks (scope, last_seen_at, last_seen_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (scope) DO UPDATE SET
			last_seen_at = EXCLUDED.last_seen_at,
			last_seen_id = EXCLUDED.last_seen_id,
			updated_at = now()`,
		scope, w.LastSeenAt.UTC(), w.LastSeenID,
	)
	if err != nil {
		return fmt.Errorf("save watermark: %w", err)
	}
	return nil
}
