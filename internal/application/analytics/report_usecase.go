package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/period"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/sales"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// ReportUseCase expone las vistas de análisis de ventas y su exportación.
type ReportUseCase struct {
	orders    repository.OrderSource
	settings  Settings
	renderers map[string]ReportRenderer
	log       *logger.Logger
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso. Los renderers se indexan por Format().
func NewReportUseCase(
	orders repository.OrderSource,
	settings Settings,
	log *logger.Logger,
	renderers ...ReportRenderer,
) *ReportUseCase {
	byFormat := make(map[string]ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportUseCase{
		orders:    orders,
		settings:  settings.withDefaults(),
		renderers: byFormat,
		log:       log,
		now:       time.Now,
	}
}

// TimeSeries agrega las órdenes en buckets de tiempo con resumen de desempeño.
func (uc *ReportUseCase) TimeSeries(ctx context.Context, req dto.TimeSeriesRequest) (*dto.TimeSeriesDTO, error) {
	records, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.TimeSeries: %w", err)
	}
	q := timeQuery(req, uc.now(), uc.settings.Location)
	out := dto.NewTimeSeriesDTO(sales.AggregateByTime(records, q), sales.ProductNames(records))
	return &out, nil
}

// TopProducts agrega las órdenes por producto, opcionalmente en un rango de fechas.
func (uc *ReportUseCase) TopProducts(ctx context.Context, req dto.TopProductsRequest) (*dto.ProductBreakdownDTO, error) {
	from, to, err := period.ParseRange(req.From, req.To, uc.settings.Location)
	if err != nil {
		return nil, err
	}
	records, err := uc.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopProducts: %w", err)
	}
	topN := req.TopN
	if topN <= 0 {
		topN = uc.settings.TopN
	}
	b := sales.AggregateByProduct(sales.InRange(records, from, to), sales.ProductQuery{Product: req.Product, TopN: topN})
	if b.Skipped > 0 {
		uc.log.Warn().Int("skipped", b.Skipped).Msg("analytics: líneas sin identidad de producto")
	}
	out := dto.NewProductBreakdownDTO(b)
	return &out, nil
}

// SalesWindow compara las ventas facturadas de la última ventana con la anterior.
func (uc *ReportUseCase) SalesWindow(ctx context.Context, req dto.SalesWindowRequest) (*dto.WindowComparisonDTO, error) {
	invoices, err := uc.orders.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.SalesWindow: %w", err)
	}
	window := time.Duration(req.Hours) * time.Hour
	out := dto.NewWindowComparisonDTO(sales.CompareWindows(invoices, uc.now(), window))
	return &out, nil
}

// Export genera el reporte de ventas del período en el formato pedido.
// Devuelve domain.ErrUnsupportedFormat si no hay renderer para el formato.
func (uc *ReportUseCase) Export(ctx context.Context, req dto.TimeSeriesRequest, format string) (*RenderedReport, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	var orders, invoices []entity.Order
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = uc.orders.ListOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		invoices, err = uc.orders.ListInvoices(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.Export: %w", err)
	}

	now := uc.now()
	q := timeQuery(req, now, uc.settings.Location)
	series := sales.AggregateByTime(orders, q)
	scoped := scopeRecords(orders, q)

	report := SalesReport{
		Title:       "Sales Report",
		Period:      periodLabel(q),
		GeneratedAt: now.In(uc.settings.Location),
		Series:      dto.NewTimeSeriesDTO(series, nil),
		Products:    dto.NewProductBreakdownDTO(sales.AggregateByProduct(scoped, sales.ProductQuery{Product: q.Product, TopN: uc.settings.TopN})),
		Payments:    dto.NewPaymentBreakdownDTO(sales.PaymentTotals(scoped)),
		Last24h:     dto.NewWindowComparisonDTO(sales.CompareWindows(invoices, now, sales.DefaultComparisonWindow)),
	}

	body, err := renderer.Render(report)
	if err != nil {
		return nil, fmt.Errorf("analytics.Export: render %s: %w", format, err)
	}
	uc.log.Info().Str("format", format).Str("period", report.Period).Int("bytes", len(body)).Msg("reporte generado")

	return &RenderedReport{
		Filename:    fmt.Sprintf("sales-%s.%s", strings.ReplaceAll(strings.ToLower(report.Period), " ", "-"), format),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

// scopeRecords limita los registros al año (y mes, fuera de monthly) de la consulta.
func scopeRecords(records []entity.Order, q sales.TimeQuery) []entity.Order {
	var from, to time.Time
	if q.Timeframe == sales.TimeframeMonthly {
		from = time.Date(q.Year, time.January, 1, 0, 0, 0, 0, q.Location)
		to = from.AddDate(1, 0, 0).Add(-time.Nanosecond)
	} else {
		from = time.Date(q.Year, q.Month, 1, 0, 0, 0, 0, q.Location)
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}
	return sales.InRange(records, &from, &to)
}
