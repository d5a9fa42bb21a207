// Package pdf genera el reporte de ventas descargable en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período    │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Total | Promedio | Más alto | Más bajo               │
//	│  TABLA por intervalo: Período | Ingresos | Cant. | Líneas   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA por producto: Producto | Cant. | Precio | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS + últimas 24 h                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/pkg/money"
)

var _ analytics.ReportRenderer = (*SalesReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// SalesReportRenderer implementa analytics.ReportRenderer usando Maroto v2.
type SalesReportRenderer struct {
	author string
}

// NewSalesReportRenderer construye el renderer. author va en los metadatos del PDF.
func NewSalesReportRenderer(author string) *SalesReportRenderer {
	return &SalesReportRenderer{author: author}
}

func (r *SalesReportRenderer) Format() string      { return analytics.FormatPDF }
func (r *SalesReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *SalesReportRenderer) Render(report analytics.SalesReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(r.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report.Series))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitle("Ventas por " + timeframeLabel(report.Series.Timeframe)))
	m.AddRows(tableHeaderRow("Período", "Ingresos", "Cantidad", "Líneas"))
	m.AddRows(bucketRows(report.Series.Buckets)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("Productos"))
	m.AddRows(tableHeaderRow("Producto", "Cantidad", "Precio unit.", "Total"))
	m.AddRows(productRows(report.Products)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(paymentsRow(report.Payments))
	m.AddRows(windowRow(report.Last24h))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report analytics.SalesReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Period, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func kpiRow(s dto.TimeSeriesDTO) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	return row.New(14).Add(
		kpi("Total", money.Format(s.Total)),
		kpi("Promedio", money.Format(s.Average)),
		kpi("Más alto", money.Format(s.Highest)),
		kpi("Más bajo", money.Format(s.Lowest)),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(first string, rest ...string) core.Row {
	cols := []core.Col{col.New(6).Add(text.New(first, props.Text{
		Style: fontstyle.Bold, Size: 8, Top: 1,
	}))}
	for _, label := range rest {
		cols = append(cols, col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func bucketRows(buckets []dto.TimeBucketDTO) []core.Row {
	rows := make([]core.Row, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, dataRow(b.Label,
			money.Number(b.Revenue),
			money.Quantity(b.Quantity),
			fmt.Sprintf("%d", b.Count),
		))
	}
	return rows
}

func productRows(p dto.ProductBreakdownDTO) []core.Row {
	if len(p.Products) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin ventas en el período", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	rows := make([]core.Row, 0, len(p.Products)+1)
	for _, s := range p.Products {
		rows = append(rows, dataRow(s.Name,
			money.Quantity(s.TotalQuantity),
			money.Number(s.UnitPrice),
			money.Number(s.TotalAmount),
		))
	}
	if p.Skipped > 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d líneas sin nombre de producto omitidas", p.Skipped), props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}

func dataRow(first string, rest ...string) core.Row {
	cols := []core.Col{col.New(6).Add(text.New(first, props.Text{Size: 8, Top: 1}))}
	for _, v := range rest {
		cols = append(cols, col.New(2).Add(text.New(v, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})))
	}
	return row.New(5).Add(cols...)
}

func paymentsRow(p dto.PaymentBreakdownDTO) core.Row {
	summary := fmt.Sprintf("Efectivo: %s   |   MoMo: %s   |   Crédito: %s",
		money.Format(p.Cash.Add(p.SplitCash)),
		money.Format(p.Momo.Add(p.SplitMomo)),
		money.Format(p.Credit),
	)
	return row.New(12).Add(col.New(12).Add(
		text.New("PAGOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(summary, props.Text{Size: 8, Top: 6}),
	))
}

func windowRow(w dto.WindowComparisonDTO) core.Row {
	color := colorPrimary
	if w.PercentageChange.IsNegative() {
		color = colorRed
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("ÚLTIMAS %d H", w.WindowHours), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%d) frente a %s (%d)",
				money.Format(w.Current), w.CurrentCount,
				money.Format(w.Previous), w.PreviousCount,
			), props.Text{Size: 8, Top: 6}),
		),
		col.New(4).Add(text.New(money.Percent(w.PercentageChange), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: color, Top: 4,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func timeframeLabel(tf string) string {
	switch tf {
	case "daily":
		return "día"
	case "weekly":
		return "semana"
	default:
		return "mes"
	}
}
