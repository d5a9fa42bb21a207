// Package orders contiene el listado de órdenes recientes del tablero.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/period"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
)

// DefaultWindow ventana del listado cuando no se indica rango.
const DefaultWindow = 24 * time.Hour

// OrdersUseCase lista órdenes con filtros de fecha, búsqueda y orden.
type OrdersUseCase struct {
	orders repository.OrderSource
	loc    *time.Location
	now    func() time.Time
}

// NewOrdersUseCase construye el caso de uso.
func NewOrdersUseCase(orders repository.OrderSource, loc *time.Location) *OrdersUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &OrdersUseCase{orders: orders, loc: loc, now: time.Now}
}

// Recent devuelve las órdenes del rango pedido (por defecto últimas 24 horas),
// más recientes primero o agrupadas por método de pago, paginadas.
// Payments se calcula sobre todo el conjunto filtrado, no sólo la página.
func (uc *OrdersUseCase) Recent(ctx context.Context, req dto.RecentOrdersRequest) (*dto.RecentOrdersDTO, error) {
	req.DefaultPage()
	from, to, err := period.ParseRange(req.From, req.To, uc.loc)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	if from == nil && to == nil {
		f := now.Add(-DefaultWindow)
		from, to = &f, &now
	}

	records, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders.Recent: %w", err)
	}

	filtered := sales.InRange(records, from, to)
	by := sales.SearchField(req.SearchBy)
	if by == "" {
		by = sales.SearchAll
	}
	filtered = sales.Search(filtered, req.Search, by)
	filtered = sales.SortByCreatedDesc(filtered)
	if req.Sort == "payment" {
		filtered = sales.SortByPaymentMethod(filtered)
	}

	start, end := req.Bounds(len(filtered))
	items := make([]dto.OrderDTO, 0, end-start)
	for _, o := range filtered[start:end] {
		items = append(items, dto.NewOrderDTO(o))
	}

	out := &dto.RecentOrdersDTO{
		Items:    items,
		Page:     dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: len(filtered)},
		Payments: dto.NewPaymentBreakdownDTO(sales.PaymentTotals(filtered)),
	}
	if from != nil {
		out.From = *from
	}
	if to != nil {
		out.To = *to
	}
	return out, nil
}
