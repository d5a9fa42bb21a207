package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/notifications"
)

// NotificationsHandler contador de órdenes nuevas.
type NotificationsHandler struct {
	uc *notifications.UseCase
}

func NewNotificationsHandler(uc *notifications.UseCase) *NotificationsHandler {
	return &NotificationsHandler{uc: uc}
}

// GetOrders godoc
// @Summary      Órdenes nuevas desde la última revisión
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationCountDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/notifications/orders [get]
func (h *NotificationsHandler) GetOrders(c *fiber.Ctx) error {
	out, err := h.uc.Count(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AckOrders godoc
// @Summary      Marcar órdenes como vistas
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationCountDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/notifications/orders/ack [post]
func (h *NotificationsHandler) AckOrders(c *fiber.Ctx) error {
	out, err := h.uc.Acknowledge(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
