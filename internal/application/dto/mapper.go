package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
)

// Conversión de resultados del dominio a DTOs. Los montos se redondean a 2 decimales.

func money(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// NewTimeSeriesDTO construye la serie a partir del resumen por buckets.
func NewTimeSeriesDTO(s sales.TimeBucketSummary, products []string) TimeSeriesDTO {
	out := TimeSeriesDTO{
		Timeframe:   string(s.Timeframe),
		Year:        s.Year,
		Month:       int(s.Month),
		Product:     s.Product,
		Labels:      append([]string{}, s.Labels...),
		Values:      make([]decimal.Decimal, len(s.Values)),
		Buckets:     make([]TimeBucketDTO, len(s.Values)),
		Total:       money(s.Total),
		Average:     money(s.Average),
		Highest:     money(s.Highest),
		Lowest:      money(s.Lowest),
		Performance: NewPerformanceDTO(sales.Performance(s)),
		Products:    products,
	}
	if out.Product == "" {
		out.Product = sales.AllProducts
	}
	for i, v := range s.Values {
		out.Values[i] = money(v)
		out.Buckets[i] = TimeBucketDTO{
			Label:    s.Labels[i],
			Revenue:  money(v),
			Quantity: s.Quantities[i],
			Count:    s.Counts[i],
		}
	}
	return out
}

// NewPerformanceDTO convierte el resumen de desempeño.
func NewPerformanceDTO(p sales.PeriodPerformance) PerformanceDTO {
	return PerformanceDTO{
		TotalRevenue:      money(p.TotalRevenue),
		TotalQuantity:     p.TotalQuantity,
		LineCount:         p.LineCount,
		AverageOrderValue: money(p.AverageOrderValue),
		BestPeriod:        p.BestPeriod,
		WorstPeriod:       p.WorstPeriod,
	}
}

// NewProductSummaryDTO convierte el acumulado de un producto.
func NewProductSummaryDTO(p sales.ProductSummary) ProductSummaryDTO {
	return ProductSummaryDTO{
		Name:          p.Name,
		TotalAmount:   money(p.TotalAmount),
		TotalQuantity: p.TotalQuantity,
		UnitPrice:     money(p.UnitPrice),
		Orders:        p.Orders,
	}
}

// NewProductSummaryDTOs convierte una lista de acumulados.
func NewProductSummaryDTOs(ps []sales.ProductSummary) []ProductSummaryDTO {
	out := make([]ProductSummaryDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProductSummaryDTO(p))
	}
	return out
}

// NewProductBreakdownDTO convierte el desglose por producto.
func NewProductBreakdownDTO(b sales.ProductBreakdown) ProductBreakdownDTO {
	return ProductBreakdownDTO{
		Products: NewProductSummaryDTOs(b.Products),
		Top:      NewProductSummaryDTOs(b.Top),
		Best:     NewProductSummaryDTO(b.Best),
		Skipped:  b.Skipped,
	}
}

// NewWindowComparisonDTO convierte la comparación de ventanas.
func NewWindowComparisonDTO(w sales.WindowComparison) WindowComparisonDTO {
	return WindowComparisonDTO{
		WindowHours:      int(w.Window / time.Hour),
		Current:          money(w.Current),
		Previous:         money(w.Previous),
		CurrentCount:     w.CurrentCount,
		PreviousCount:    w.PreviousCount,
		PercentageChange: money(w.Change),
	}
}

// NewPaymentBreakdownDTO convierte los totales por método de pago.
func NewPaymentBreakdownDTO(p sales.PaymentBreakdown) PaymentBreakdownDTO {
	return PaymentBreakdownDTO{
		Cash:             money(p.Cash),
		Momo:             money(p.Momo),
		Credit:           money(p.Credit),
		Unspecified:      money(p.Unspecified),
		SplitCash:        money(p.SplitCash),
		SplitMomo:        money(p.SplitMomo),
		MismatchedSplits: p.MismatchedSplits,
	}
}

// NewProductDTO convierte un producto del catálogo.
func NewProductDTO(p entity.Product) ProductDTO {
	out := ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Quantity:       p.Quantity,
		RetailPrice:    money(p.Price.Retail),
		WholesalePrice: money(p.Price.Wholesale),
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		out.CreatedAt = &created
	}
	return out
}

// NewProductDTOs convierte una lista de productos.
func NewProductDTOs(ps []entity.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProductDTO(p))
	}
	return out
}

// NewOrderDTO convierte una orden resolviendo la identidad de cada línea.
func NewOrderDTO(o entity.Order) OrderDTO {
	out := OrderDTO{
		ID:            o.ID,
		InvoiceNumber: o.InvoiceNumber,
		CustomerName:  o.CustomerName,
		PaymentMethod: o.PaymentMethod,
		CashAmount:    money(sales.ParseNumber(o.CashAmount)),
		MomoAmount:    money(sales.ParseNumber(o.MomoAmount)),
		Total:         money(sales.OrderTotal(o)),
		CreatedAt:     o.CreatedAt,
		Items:         make([]LineItemDTO, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		l := sales.NormalizeLine(it)
		out.Items = append(out.Items, LineItemDTO{
			Product:   l.ProductKey,
			Price:     money(l.Price),
			Quantity:  l.Quantity,
			LineTotal: money(l.LineTotal),
		})
	}
	return out
}

// NewExpenseDTO convierte un gasto.
func NewExpenseDTO(e entity.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID,
		Description: e.Description,
		Amount:      money(sales.ParseNumber(e.Amount)),
		Category:    e.Category,
		Date:        e.Date,
		Notes:       e.Notes,
	}
}
