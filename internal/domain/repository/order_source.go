package repository

import (
	"context"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
)

// OrderSource define el puerto de lectura de ventas (DIP).
// Las implementaciones devuelven el listado completo; el filtrado y la
// agregación los hace el dominio.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]entity.Order, error)
	ListInvoices(ctx context.Context) ([]entity.Order, error)
}
