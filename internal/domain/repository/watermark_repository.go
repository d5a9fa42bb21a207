package repository

import (
	"context"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// WatermarkRepository persiste la marca de "último visto" por ámbito
// (p. ej. "orders"). Get devuelve (nil, nil) si no existe marca.
type WatermarkRepository interface {
	Get(ctx context.Context, scope string) (*entity.Watermark, error)
	Save(ctx context.Context, scope string, w entity.Watermark) error
}
