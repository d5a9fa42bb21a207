package refresh

import (
	"context"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// Gauges publica los valores calculados por los jobs.
type Gauges interface {
	SetLowStock(n int)
	SetNewOrders(n int)
}

type lowStockReader interface {
	LowStock(ctx context.Context, threshold int) (*dto.LowStockDTO, error)
}

type notificationCounter interface {
	Count(ctx context.Context) (*dto.NotificationCountDTO, error)
}

type notificationResetter interface {
	ResetIfStale(ctx context.Context, maxAge time.Duration) (bool, error)
}

// ── Stock bajo ──────────────────────────────────────────────────────────────

// LowStockJob recalcula los productos bajo el umbral y los reporta.
type LowStockJob struct {
	stock  lowStockReader
	gauges Gauges
	log    *logger.Logger
}

// NewLowStockJob construye el job.
func NewLowStockJob(stock lowStockReader, gauges Gauges, log *logger.Logger) *LowStockJob {
	return &LowStockJob{stock: stock, gauges: gauges, log: log}
}

func (j *LowStockJob) Name() string { return "low_stock" }

func (j *LowStockJob) Run(ctx context.Context) error {
	out, err := j.stock.LowStock(ctx, 0)
	if err != nil {
		return err
	}
	j.gauges.SetLowStock(out.Count)
	if out.Count == 0 {
		return nil
	}
	names := make([]string, 0, len(out.Products))
	for _, p := range out.Products {
		names = append(names, p.Name)
	}
	j.log.Warn().Int("count", out.Count).Int("threshold", out.Threshold).Strs("products", names).Msg("productos con stock bajo")
	return nil
}

// ── Órdenes nuevas ──────────────────────────────────────────────────────────

// NewOrdersJob actualiza el conteo de órdenes nuevas desde la última marca.
type NewOrdersJob struct {
	notifications notificationCounter
	gauges        Gauges
	log           *logger.Logger
}

// NewNewOrdersJob construye el job.
func NewNewOrdersJob(n notificationCounter, gauges Gauges, log *logger.Logger) *NewOrdersJob {
	return &NewOrdersJob{notifications: n, gauges: gauges, log: log}
}

func (j *NewOrdersJob) Name() string { return "new_orders" }

func (j *NewOrdersJob) Run(ctx context.Context) error {
	out, err := j.notifications.Count(ctx)
	if err != nil {
		return err
	}
	j.gauges.SetNewOrders(out.NewCount)
	if out.NewCount > 0 {
		j.log.Info().Int("new_orders", out.NewCount).Msg("órdenes nuevas sin revisar")
	}
	return nil
}

// ── Reinicio de notificaciones ──────────────────────────────────────────────

// NotificationResetJob reconoce las notificaciones cuando la marca es más vieja que maxAge.
type NotificationResetJob struct {
	notifications notificationResetter
	gauges        Gauges
	maxAge        time.Duration
}

// NewNotificationResetJob construye el job. maxAge <= 0 usa 24 horas.
func NewNotificationResetJob(n notificationResetter, gauges Gauges, maxAge time.Duration) *NotificationResetJob {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &NotificationResetJob{notifications: n, gauges: gauges, maxAge: maxAge}
}

func (j *NotificationResetJob) Name() string { return "notification_reset" }

func (j *NotificationResetJob) Run(ctx context.Context) error {
	reset, err := j.notifications.ResetIfStale(ctx, j.maxAge)
	if err != nil {
		return err
	}
	if reset {
		j.gauges.SetNewOrders(0)
	}
	return nil
}
