// Package analytics contiene los casos de uso del tablero de ventas y los
// reportes exportables.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// DashboardUseCase arma el resumen completo del tablero en una sola llamada.
//
// Fuentes: OrderSource (órdenes y facturas) y ProductSource (existencias).
// La agregación la hace el paquete sales; aquí sólo se orquesta.
type DashboardUseCase struct {
	orders   repository.OrderSource
	products repository.ProductSource
	settings Settings
	log      *logger.Logger
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	orders repository.OrderSource,
	products repository.ProductSource,
	settings Settings,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		orders:   orders,
		products: products,
		settings: settings.withDefaults(),
		log:      log,
		now:      time.Now,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. ListOrders    → serie de tiempo, top productos, pagos
//  2. ListInvoices  → total facturado y ventas últimas 24h
//  3. ListProducts  → stock total y stock bajo
func (uc *DashboardUseCase) GetSummary(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	type ordersResult struct {
		records []entity.Order
		err     error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}

	ordersCh := make(chan ordersResult, 1)
	invoicesCh := make(chan ordersResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		records, err := uc.orders.ListOrders(ctx)
		ordersCh <- ordersResult{records, err}
	}()
	go func() {
		records, err := uc.orders.ListInvoices(ctx)
		invoicesCh <- ordersResult{records, err}
	}()
	go func() {
		products, err := uc.products.ListProducts(ctx)
		productsCh <- productsResult{products, err}
	}()

	orders := <-ordersCh
	invoices := <-invoicesCh
	products := <-productsCh

	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes: %w", orders.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	// ── Parámetros ─────────────────────────────────────────────────────────────
	q := timeQuery(dto.TimeSeriesRequest{
		Timeframe: req.Timeframe,
		Year:      req.Year,
		Month:     req.Month,
		Product:   req.Product,
	}, now, uc.settings.Location)
	topN := req.TopN
	if topN <= 0 {
		topN = uc.settings.TopN
	}
	threshold := req.Threshold
	if threshold <= 0 {
		threshold = uc.settings.LowStockThreshold
	}

	// ── Agregados ──────────────────────────────────────────────────────────────
	series := sales.AggregateByTime(orders.records, q)
	breakdown := sales.AggregateByProduct(orders.records, sales.ProductQuery{Product: q.Product, TopN: topN})
	if breakdown.Skipped > 0 {
		uc.log.Warn().Int("skipped", breakdown.Skipped).Msg("dashboard: líneas sin identidad de producto")
	}

	invoiceTotal := decimal.Zero
	for _, inv := range invoices.records {
		invoiceTotal = invoiceTotal.Add(sales.OrderTotal(inv))
	}

	low := sales.LowStock(products.products, threshold)

	return &dto.DashboardSummaryDTO{
		Sales:             dto.NewTimeSeriesDTO(series, sales.ProductNames(orders.records)),
		TopProducts:       dto.NewProductSummaryDTOs(breakdown.Top),
		BestProduct:       dto.NewProductSummaryDTO(breakdown.Best),
		InvoiceTotal:      invoiceTotal.Round(2),
		InvoiceCount:      len(invoices.records),
		Payments:          dto.NewPaymentBreakdownDTO(sales.PaymentTotals(orders.records)),
		Last24h:           dto.NewWindowComparisonDTO(sales.CompareWindows(invoices.records, now, sales.DefaultComparisonWindow)),
		StockTotal:        sales.StockTotal(products.products),
		LowStockThreshold: threshold,
		LowStock:          dto.NewProductDTOs(low),
		DateLabel:         periodLabel(q),
	}, nil
}
