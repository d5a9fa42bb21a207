// Package notifications calcula cuántas órdenes llegaron desde la última
// marca de "visto" y administra esa marca.
package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// ScopeOrders ámbito de la marca de órdenes nuevas.
const ScopeOrders = "orders"

// UseCase notificaciones de órdenes nuevas.
type UseCase struct {
	orders     repository.OrderSource
	watermarks repository.WatermarkRepository
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(orders repository.OrderSource, watermarks repository.WatermarkRepository, log *logger.Logger) *UseCase {
	return &UseCase{orders: orders, watermarks: watermarks, log: log, now: time.Now}
}

// Count devuelve cuántas órdenes son posteriores a la marca guardada.
// Sin marca previa se toma la orden más reciente como línea base y se reporta 0.
func (uc *UseCase) Count(ctx context.Context) (*dto.NotificationCountDTO, error) {
	current, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("notifications.Count: %w", err)
	}
	w, err := uc.watermarks.Get(ctx, ScopeOrders)
	if err != nil {
		return nil, fmt.Errorf("notifications.Count: leer marca: %w", err)
	}

	if w == nil {
		base := sales.Latest(current)
		if base.IsZero() {
			base = entity.Watermark{LastSeenAt: uc.now()}
		}
		if err := uc.watermarks.Save(ctx, ScopeOrders, base); err != nil {
			return nil, fmt.Errorf("notifications.Count: guardar marca inicial: %w", err)
		}
		uc.log.Info().Time("last_seen_at", base.LastSeenAt).Msg("notificaciones: marca inicial registrada")
		return newCountDTO(base, 0), nil
	}

	return newCountDTO(*w, sales.NewItemsSince(*w, current)), nil
}

// Acknowledge marca todo lo existente como visto (marca = ahora).
func (uc *UseCase) Acknowledge(ctx context.Context) (*dto.NotificationCountDTO, error) {
	w := entity.Watermark{LastSeenAt: uc.now()}
	if err := uc.watermarks.Save(ctx, ScopeOrders, w); err != nil {
		return nil, fmt.Errorf("notifications.Acknowledge: %w", err)
	}
	return newCountDTO(w, 0), nil
}

// ResetIfStale reconoce las notificaciones si la marca tiene más de maxAge.
// Devuelve true si hubo reinicio.
func (uc *UseCase) ResetIfStale(ctx context.Context, maxAge time.Duration) (bool, error) {
	w, err := uc.watermarks.Get(ctx, ScopeOrders)
	if err != nil {
		return false, fmt.Errorf("notifications.ResetIfStale: %w", err)
	}
	if w == nil || uc.now().Sub(w.LastSeenAt) < maxAge {
		return false, nil
	}
	if _, err := uc.Acknowledge(ctx); err != nil {
		return false, err
	}
	uc.log.Info().Dur("max_age", maxAge).Msg("notificaciones: marca reiniciada por antigüedad")
	return true, nil
}

func newCountDTO(w entity.Watermark, n int) *dto.NotificationCountDTO {
	out := &dto.NotificationCountDTO{Scope: ScopeOrders, NewCount: n}
	if !w.LastSeenAt.IsZero() {
		t := w.LastSeenAt
		out.LastSeenAt = &t
	}
	return out
}
