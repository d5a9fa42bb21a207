package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// TimeSeriesRequest parámetros para GET /api/analytics/timeseries y los reportes exportables.
type TimeSeriesRequest struct {
	Timeframe string `query:"timeframe" json:"timeframe" validate:"omitempty,oneof=monthly weekly daily"` // default monthly
	Year      int    `query:"year" json:"year" validate:"omitempty,min=2000,max=2100"`                    // default año actual
	Month     int    `query:"month" json:"month" validate:"omitempty,min=1,max=12"`                       // 1-12; default mes actual
	Product   string `query:"product" json:"product" validate:"omitempty,max=200"`                        // "all" o vacío: todos
}

// TopProductsRequest parámetros para GET /api/analytics/top-products.
type TopProductsRequest struct {
	Product string `query:"product" validate:"omitempty,max=200"`
	TopN    int    `query:"top_n" validate:"omitempty,min=1,max=50"`       // default 4
	From    string `query:"from" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
	To      string `query:"to" validate:"omitempty,datetime=2006-01-02"`   // YYYY-MM-DD, inclusivo
}

// SalesWindowRequest parámetros para GET /api/analytics/sales-window.
type SalesWindowRequest struct {
	Hours int `query:"hours" validate:"omitempty,min=1,max=720"` // default 24
}

// ── Series de tiempo ──────────────────────────────────────────────────────────

// TimeBucketDTO un bucket de la serie.
type TimeBucketDTO struct {
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity decimal.Decimal `json:"quantity"`
	Count    int             `json:"count"` // ocurrencias de líneas
}

// PerformanceDTO resumen de desempeño del período.
type PerformanceDTO struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalQuantity     decimal.Decimal `json:"total_quantity"`
	LineCount         int             `json:"line_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	BestPeriod        string          `json:"best_period"`
	WorstPeriod       string          `json:"worst_period"`
}

// TimeSeriesDTO respuesta de GET /api/analytics/timeseries.
// Labels y Values son paralelos a Buckets, para enlazar directo a un gráfico.
type TimeSeriesDTO struct {
	Timeframe   string            `json:"timeframe"`
	Year        int               `json:"year"`
	Month       int               `json:"month,omitempty"`
	Product     string            `json:"product"`
	Labels      []string          `json:"labels"`
	Values      []decimal.Decimal `json:"values"`
	Buckets     []TimeBucketDTO   `json:"buckets"`
	Total       decimal.Decimal   `json:"total"`
	Average     decimal.Decimal   `json:"average"`
	Highest     decimal.Decimal   `json:"highest"`
	Lowest      decimal.Decimal   `json:"lowest"`
	Performance PerformanceDTO    `json:"performance"`
	Products    []string          `json:"products,omitempty"` // opciones del selector de producto
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductSummaryDTO ventas acumuladas de un producto.
type ProductSummaryDTO struct {
	Name          string          `json:"name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Orders        int             `json:"orders"` // ocurrencias de líneas
}

// ProductBreakdownDTO respuesta de GET /api/analytics/top-products.
type ProductBreakdownDTO struct {
	Products []ProductSummaryDTO `json:"products"`
	Top      []ProductSummaryDTO `json:"top"`
	Best     ProductSummaryDTO   `json:"best"`
	Skipped  int                 `json:"skipped_items"`
}

// ── Comparación de ventanas ───────────────────────────────────────────────────

// WindowComparisonDTO ventas de la ventana actual contra la anterior.
type WindowComparisonDTO struct {
	WindowHours      int             `json:"window_hours"`
	Current          decimal.Decimal `json:"current"`
	Previous         decimal.Decimal `json:"previous"`
	CurrentCount     int             `json:"current_count"`
	PreviousCount    int             `json:"previous_count"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// PaymentBreakdownDTO totales por método de pago.
type PaymentBreakdownDTO struct {
	Cash             decimal.Decimal `json:"cash"`
	Momo             decimal.Decimal `json:"momo"`
	Credit           decimal.Decimal `json:"credit"`
	Unspecified      decimal.Decimal `json:"unspecified"`
	SplitCash        decimal.Decimal `json:"split_cash"`
	SplitMomo        decimal.Decimal `json:"split_momo"`
	MismatchedSplits int             `json:"mismatched_splits"`
}
