// Package inventory contiene los casos de uso de existencias del catálogo.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// replenishmentWindow historial de ventas usado para sugerir reposición.
const replenishmentWindow = 30 * 24 * time.Hour

// StockUseCase consultas de existencias: stock bajo, resumen y listado.
type StockUseCase struct {
	products  repository.ProductSource
	orders    repository.OrderSource
	threshold int
	log       *logger.Logger
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso. threshold <= 0 usa el umbral por defecto (10).
func NewStockUseCase(
	products repository.ProductSource,
	orders repository.OrderSource,
	threshold int,
	log *logger.Logger,
) *StockUseCase {
	if threshold <= 0 {
		threshold = sales.DefaultLowStockThreshold
	}
	return &StockUseCase{products: products, orders: orders, threshold: threshold, log: log, now: time.Now}
}

// Threshold umbral de stock bajo configurado.
func (uc *StockUseCase) Threshold() int { return uc.threshold }

// LowStock devuelve los productos con existencia menor al umbral.
// threshold <= 0 usa el configurado.
func (uc *StockUseCase) LowStock(ctx context.Context, threshold int) (*dto.LowStockDTO, error) {
	if threshold <= 0 {
		threshold = uc.threshold
	}
	products, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.LowStock: %w", err)
	}
	low := sales.LowStock(products, threshold)
	return &dto.LowStockDTO{
		Threshold: threshold,
		Count:     len(low),
		Products:  dto.NewProductDTOs(low),
	}, nil
}

// Overview resume el inventario: productos, unidades, stock bajo y categorías.
func (uc *StockUseCase) Overview(ctx context.Context) (*dto.InventoryOverviewDTO, error) {
	products, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Overview: %w", err)
	}
	return &dto.InventoryOverviewDTO{
		ProductCount:  len(products),
		StockTotal:    sales.StockTotal(products),
		LowStockCount: len(sales.LowStock(products, uc.threshold)),
		Threshold:     uc.threshold,
		Categories:    sales.Categories(products),
	}, nil
}

// List devuelve el catálogo filtrado por categoría y texto, paginado.
func (uc *StockUseCase) List(ctx context.Context, req dto.ProductListRequest) (*dto.ProductListDTO, error) {
	req.DefaultPage()
	products, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.List: %w", err)
	}

	category := strings.TrimSpace(req.Category)
	search := strings.ToLower(strings.TrimSpace(req.Search))
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	start, end := req.Bounds(len(filtered))
	return &dto.ProductListDTO{
		Items: dto.NewProductDTOs(filtered[start:end]),
		Page:  dto.PageResponse{Limit: req.Limit, Offset: req.Offset, Total: len(filtered)},
	}, nil
}

// Replenishment devuelve los productos bajo el umbral con la cantidad sugerida de
// pedido, priorizados por unidades vendidas en los últimos 30 días.
// Sugerido = max(umbral, vendido30d) - existencia.
func (uc *StockUseCase) Replenishment(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	products, err := uc.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Replenishment: productos: %w", err)
	}
	low := sales.LowStock(products, uc.threshold)
	if len(low) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}, nil
	}

	orders, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.Replenishment: órdenes: %w", err)
	}
	now := uc.now()
	from := now.Add(-replenishmentWindow)
	recent := sales.InRange(orders, &from, &now)

	// Ventas por nombre normalizado del producto.
	sold := make(map[string]decimal.Decimal)
	for _, p := range sales.AggregateByProduct(recent, sales.ProductQuery{}).Products {
		k := strings.ToLower(strings.TrimSpace(p.Name))
		sold[k] = sold[k].Add(p.TotalQuantity)
	}

	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(low))
	threshold := decimal.NewFromInt(int64(uc.threshold))
	for _, p := range low {
		s, ok := sold[strings.ToLower(strings.TrimSpace(p.Name))]
		if !ok {
			s = decimal.Zero
		}
		target := decimal.Max(threshold, s.Ceil())
		out = append(out, dto.ReplenishmentSuggestionDTO{
			Product:      dto.NewProductDTO(p),
			SoldLast30d:  s,
			SuggestedQty: target.Sub(decimal.NewFromInt(int64(p.Quantity))),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SoldLast30d.GreaterThan(out[j].SoldLast30d)
	})
	return out, nil
}
