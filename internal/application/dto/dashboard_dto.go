package dto

import "github.com/shopspring/decimal"

// DashboardRequest parámetros para GET /api/dashboard/summary.
type DashboardRequest struct {
	Timeframe string `query:"timeframe" validate:"omitempty,oneof=monthly weekly daily"`
	Year      int    `query:"year" validate:"omitempty,min=2000,max=2100"`
	Month     int    `query:"month" validate:"omitempty,min=1,max=12"`
	Product   string `query:"product" validate:"omitempty,max=200"`
	TopN      int    `query:"top_n" validate:"omitempty,min=1,max=50"`
	Threshold int    `query:"threshold" validate:"omitempty,min=1"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Reúne en una sola llamada las tarjetas y gráficos del tablero.
type DashboardSummaryDTO struct {
	Sales        TimeSeriesDTO       `json:"sales"`
	TopProducts  []ProductSummaryDTO `json:"top_products"`
	BestProduct  ProductSummaryDTO   `json:"best_product"`
	InvoiceTotal decimal.Decimal     `json:"invoice_total"` // suma de totales de facturas
	InvoiceCount int                 `json:"invoice_count"`
	Payments     PaymentBreakdownDTO `json:"payments"`
	Last24h      WindowComparisonDTO `json:"last_24h"`

	// Inventario
	StockTotal        int          `json:"stock_total"`
	LowStockThreshold int          `json:"low_stock_threshold"`
	LowStock          []ProductDTO `json:"low_stock"`

	DateLabel string `json:"date_label"` // ej: "March 2024"
}
