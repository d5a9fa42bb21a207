package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/expenses"
)

// ExpensesHandler resumen de gastos.
type ExpensesHandler struct {
	uc *expenses.UseCase
}

func NewExpensesHandler(uc *expenses.UseCase) *ExpensesHandler {
	return &ExpensesHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta, inclusivo (YYYY-MM-DD)"
// @Success      200  {object}  dto.ExpenseSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/expenses/summary [get]
func (h *ExpensesHandler) GetSummary(c *fiber.Ctx) error {
	var req dto.ExpenseSummaryRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Summary(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
