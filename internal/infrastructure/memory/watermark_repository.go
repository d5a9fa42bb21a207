// Package memory implementa los puertos de estado en memoria del proceso.
// Se usa cuando Redis no está configurado.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
)

// WatermarkRepository guarda las marcas en un mapa protegido por mutex.
type WatermarkRepository struct {
	mu    sync.RWMutex
	marks map[string]entity.Watermark
}

var _ repository.WatermarkRepository = (*WatermarkRepository)(nil)

// NewWatermarkRepository crea un repositorio vacío.
func NewWatermarkRepository() *WatermarkRepository {
	return &WatermarkRepository{marks: make(map[string]entity.Watermark)}
}

// Get devuelve la marca del ámbito o (nil, nil) si no existe.
func (r *WatermarkRepository) Get(_ context.Context, scope string) (*entity.Watermark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.marks[scope]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// Save reemplaza la marca del ámbito.
func (r *WatermarkRepository) Save(_ context.Context, scope string, w entity.Watermark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marks[scope] = w
	return nil
}
