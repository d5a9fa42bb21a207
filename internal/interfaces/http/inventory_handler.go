package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/inventory"
)

// InventoryHandler maneja las consultas de existencias.
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetLowStock godoc
// @Summary      Productos con stock bajo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (default configurado, 10)"
// @Success      200  {object}  dto.LowStockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) GetLowStock(c *fiber.Ctx) error {
	var req dto.LowStockRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.LowStock(c.Context(), req.Threshold)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetOverview godoc
// @Summary      Resumen de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryOverviewDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/overview [get]
func (h *InventoryHandler) GetOverview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Catálogo con existencias
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Param        search    query  string  false  "Texto en el nombre"
// @Param        limit     query  int     false  "Tamaño de página (default 10)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ProductListDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/products [get]
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	var req dto.ProductListRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos bajo el umbral con la cantidad sugerida según las ventas de los últimos 30 días.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.uc.Replenishment(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
