package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
)

// AnalyticsHandler maneja las vistas de análisis de ventas y su exportación.
type AnalyticsHandler struct {
	uc *appanalytics.ReportUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetTimeSeries godoc
// @Summary      Ventas por intervalo de tiempo
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        timeframe  query  string  false  "monthly | weekly | daily"
// @Param        year       query  int     false  "Año"
// @Param        month      query  int     false  "Mes 1-12"
// @Param        product    query  string  false  "Producto o all"
// @Success      200  {object}  dto.TimeSeriesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics/timeseries [get]
func (h *AnalyticsHandler) GetTimeSeries(c *fiber.Ctx) error {
	var req dto.TimeSeriesRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.TimeSeries(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetTopProducts godoc
// @Summary      Ranking de productos por ingreso
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        product  query  string  false  "Filtrar por producto"
// @Param        top_n    query  int     false  "Cantidad en el top (default 4)"
// @Param        from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Hasta, inclusivo (YYYY-MM-DD)"
// @Success      200  {object}  dto.ProductBreakdownDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/top-products [get]
func (h *AnalyticsHandler) GetTopProducts(c *fiber.Ctx) error {
	var req dto.TopProductsRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.TopProducts(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSalesWindow godoc
// @Summary      Ventas de la ventana actual contra la anterior
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        hours  query  int  false  "Tamaño de la ventana en horas (default 24)"
// @Success      200  {object}  dto.WindowComparisonDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales-window [get]
func (h *AnalyticsHandler) GetSalesWindow(c *fiber.Ctx) error {
	var req dto.SalesWindowRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SalesWindow(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        timeframe  query  string  false  "monthly | weekly | daily"
// @Param        year       query  int     false  "Año"
// @Param        month      query  int     false  "Mes 1-12"
// @Param        product    query  string  false  "Producto o all"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.pdf [get]
func (h *AnalyticsHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, appanalytics.FormatPDF)
}

// ExportXML godoc
// @Summary      Descargar reporte de ventas en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        timeframe  query  string  false  "monthly | weekly | daily"
// @Param        year       query  int     false  "Año"
// @Param        month      query  int     false  "Mes 1-12"
// @Param        product    query  string  false  "Producto o all"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/sales.xml [get]
func (h *AnalyticsHandler) ExportXML(c *fiber.Ctx) error {
	return h.export(c, appanalytics.FormatXML)
}

func (h *AnalyticsHandler) export(c *fiber.Ctx, format string) error {
	var req dto.TimeSeriesRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	report, err := h.uc.Export(c.Context(), req, format)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Attachment(report.Filename)
	return c.Send(report.Body)
}
