package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del tablero
// @Description  Serie de ventas, top productos, stock bajo, facturación, pagos y últimas 24 h en una sola llamada.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        timeframe  query  string  false  "monthly | weekly | daily (default monthly)"
// @Param        year       query  int     false  "Año (default actual)"
// @Param        month      query  int     false  "Mes 1-12 (default actual)"
// @Param        product    query  string  false  "Producto o all"
// @Param        top_n      query  int     false  "Cantidad de productos top (default 4)"
// @Param        threshold  query  int     false  "Umbral de stock bajo (default 10)"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	summary, err := h.uc.GetSummary(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
