package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/orders"
)

// OrdersHandler listado de órdenes recientes.
type OrdersHandler struct {
	uc *orders.OrdersUseCase
}

func NewOrdersHandler(uc *orders.OrdersUseCase) *OrdersHandler {
	return &OrdersHandler{uc: uc}
}

// GetRecent godoc
// @Summary      Órdenes recientes
// @Description  Por defecto las últimas 24 h. Incluye el desglose por método de pago del conjunto filtrado.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta, inclusivo (YYYY-MM-DD)"
// @Param        search     query  string  false  "Texto a buscar"
// @Param        search_by  query  string  false  "all | invoice | name"
// @Param        sort       query  string  false  "date | payment"
// @Param        limit      query  int     false  "Tamaño de página (default 10)"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.RecentOrdersDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/recent [get]
func (h *OrdersHandler) GetRecent(c *fiber.Ctx) error {
	var req dto.RecentOrdersRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Recent(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
