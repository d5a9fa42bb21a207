package analytics

import (
	"time"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
)

// Formatos de exportación soportados.
const (
	FormatPDF = "pdf"
	FormatXML = "xml"
)

// SalesReport datos ya agregados que se entregan a un ReportRenderer.
type SalesReport struct {
	Title       string
	Period      string // ej: "March 2024" o "2024"
	GeneratedAt time.Time
	Series      dto.TimeSeriesDTO
	Products    dto.ProductBreakdownDTO
	Payments    dto.PaymentBreakdownDTO
	Last24h     dto.WindowComparisonDTO
}

// ReportRenderer serializa un SalesReport a un formato descargable (PDF, XML).
type ReportRenderer interface {
	Format() string
	ContentType() string
	Render(report SalesReport) ([]byte, error)
}

// RenderedReport resultado de ReportUseCase.Export.
type RenderedReport struct {
	Filename    string
	ContentType string
	Body        []byte
}
