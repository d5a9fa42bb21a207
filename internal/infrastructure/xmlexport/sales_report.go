// Package xmlexport serializa el reporte de ventas a XML con etree.
package xmlexport

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/pkg/money"
)

var _ analytics.ReportRenderer = (*SalesReportRenderer)(nil)

// SalesReportRenderer implementa analytics.ReportRenderer en XML.
type SalesReportRenderer struct{}

// NewSalesReportRenderer construye el renderer.
func NewSalesReportRenderer() *SalesReportRenderer { return &SalesReportRenderer{} }

func (r *SalesReportRenderer) Format() string      { return analytics.FormatXML }
func (r *SalesReportRenderer) ContentType() string { return "application/xml" }

// Render arma el documento:
//
//	<SalesReport period=".." generatedAt=".." currency="GH₵">
//	  <Summary/> <Buckets/> <Products/> <Payments/> <Window/>
//	</SalesReport>
func (r *SalesReportRenderer) Render(report analytics.SalesReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("SalesReport")
	root.CreateAttr("title", report.Title)
	root.CreateAttr("period", report.Period)
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("currency", money.Symbol)

	writeSummary(root.CreateElement("Summary"), report.Series)
	writeBuckets(root.CreateElement("Buckets"), report.Series)
	writeProducts(root.CreateElement("Products"), report.Products)
	writePayments(root.CreateElement("Payments"), report.Payments)
	writeWindow(root.CreateElement("Window"), report.Last24h)

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: escribir documento: %w", err)
	}
	return out.Bytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func writeSummary(el *etree.Element, s dto.TimeSeriesDTO) {
	el.CreateAttr("timeframe", s.Timeframe)
	el.CreateAttr("year", strconv.Itoa(s.Year))
	if s.Month > 0 {
		el.CreateAttr("month", strconv.Itoa(s.Month))
	}
	if s.Product != "" {
		el.CreateAttr("product", s.Product)
	}
	amount(el, "Total", s.Total)
	amount(el, "Average", s.Average)
	amount(el, "Highest", s.Highest)
	amount(el, "Lowest", s.Lowest)
	perf := el.CreateElement("Performance")
	perf.CreateAttr("best", s.Performance.BestPeriod)
	perf.CreateAttr("worst", s.Performance.WorstPeriod)
	perf.CreateAttr("lines", strconv.Itoa(s.Performance.LineCount))
	amount(perf, "AverageOrderValue", s.Performance.AverageOrderValue)
}

func writeBuckets(el *etree.Element, s dto.TimeSeriesDTO) {
	for _, b := range s.Buckets {
		be := el.CreateElement("Bucket")
		be.CreateAttr("label", b.Label)
		be.CreateAttr("lines", strconv.Itoa(b.Count))
		amount(be, "Revenue", b.Revenue)
		be.CreateElement("Quantity").SetText(b.Quantity.String())
	}
}

func writeProducts(el *etree.Element, p dto.ProductBreakdownDTO) {
	el.CreateAttr("skipped", strconv.Itoa(p.Skipped))
	if p.Best.Name != "" {
		el.CreateAttr("best", p.Best.Name)
	}
	for _, s := range p.Products {
		pe := el.CreateElement("Product")
		pe.CreateAttr("name", s.Name)
		pe.CreateAttr("lines", strconv.Itoa(s.Orders))
		pe.CreateElement("Quantity").SetText(s.TotalQuantity.String())
		amount(pe, "UnitPrice", s.UnitPrice)
		amount(pe, "Total", s.TotalAmount)
	}
}

func writePayments(el *etree.Element, p dto.PaymentBreakdownDTO) {
	amount(el, "Cash", p.Cash)
	amount(el, "Momo", p.Momo)
	amount(el, "Credit", p.Credit)
	amount(el, "Unspecified", p.Unspecified)
	split := el.CreateElement("Split")
	split.CreateAttr("mismatched", strconv.Itoa(p.MismatchedSplits))
	amount(split, "Cash", p.SplitCash)
	amount(split, "Momo", p.SplitMomo)
}

func writeWindow(el *etree.Element, w dto.WindowComparisonDTO) {
	el.CreateAttr("hours", strconv.Itoa(w.WindowHours))
	cur := amount(el, "Current", w.Current)
	cur.CreateAttr("count", strconv.Itoa(w.CurrentCount))
	prev := amount(el, "Previous", w.Previous)
	prev.CreateAttr("count", strconv.Itoa(w.PreviousCount))
	el.CreateElement("PercentageChange").SetText(w.PercentageChange.StringFixed(2))
}

func amount(parent *etree.Element, tag string, d decimal.Decimal) *etree.Element {
	e := parent.CreateElement(tag)
	e.SetText(d.StringFixed(2))
	return e
}
