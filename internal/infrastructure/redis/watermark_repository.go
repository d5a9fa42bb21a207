package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// WatermarkRepository guarda cada marca como JSON en stocks:watermark:<scope>.
type WatermarkRepository struct {
	store kvStore
}

var _ repository.WatermarkRepository = (*WatermarkRepository)(nil)

// NewWatermarkRepository crea el repositorio sobre el cliente dado.
func NewWatermarkRepository(store kvStore) *WatermarkRepository {
	return &WatermarkRepository{store: store}
}

type watermarkRecord struct {
	LastSeenAt time.Time `json:"last_seen_at"`
	LastSeenID string    `json:"last_seen_id,omitempty"`
}

func (r *WatermarkRepository) Get(ctx context.Context, scope string) (*entity.Watermark, error) {
	raw, err := r.store.Get(ctx, Key("watermark", scope))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis.WatermarkRepository.Get: %w", err)
	}
	var rec watermarkRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("redis.WatermarkRepository.Get: decodificar: %w", err)
	}
	return &entity.Watermark{LastSeenAt: rec.LastSeenAt, LastSeenID: rec.LastSeenID}, nil
}

// Save sobrescribe la marca sin expiración.
func (r *WatermarkRepository) Save(ctx context.Context, scope string, w entity.Watermark) error {
	payload, err := json.Marshal(watermarkRecord{LastSeenAt: w.LastSeenAt.UTC(), LastSeenID: w.LastSeenID})
	if err != nil {
		return fmt.Errorf("redis.WatermarkRepository.Save: %w", err)
	}
	if err := r.store.Set(ctx, Key("watermark", scope), string(payload), 0); err != nil {
		return fmt.Errorf("redis.WatermarkRepository.Save: %w", err)
	}
	return nil
}
