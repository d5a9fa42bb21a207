package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/auth"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/expenses"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/notifications"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC     *appanalytics.DashboardUseCase
	ReportUC        *appanalytics.ReportUseCase
	StockUC         *inventory.StockUseCase
	OrdersUC        *orders.OrdersUseCase
	NotificationsUC *notifications.UseCase
	ExpensesUC      *expenses.UseCase
	AuthUC          *auth.AuthUseCase
	// JWTSecret vacío deja la API pública (sin login ni roles).
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	var (
		protected fiber.Router = api
		managers  []fiber.Handler
	)
	if deps.JWTSecret != "" {
		// Auth (público)
		authHandler := NewAuthHandler(deps.AuthUC)
		api.Post("/auth/login", authHandler.Login)

		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
		managers = append(managers, RequireRole(auth.RoleAdmin, auth.RoleManager))
	}

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Analytics
	analyticsHandler := NewAnalyticsHandler(deps.ReportUC)
	analyticsGroup := protected.Group("/analytics")
	analyticsGroup.Get("/timeseries", analyticsHandler.GetTimeSeries)
	analyticsGroup.Get("/top-products", analyticsHandler.GetTopProducts)
	analyticsGroup.Get("/sales-window", analyticsHandler.GetSalesWindow)

	// Reportes descargables (admin/manager)
	reports := protected.Group("/reports", managers...)
	reports.Get("/sales.pdf", analyticsHandler.ExportPDF)
	reports.Get("/sales.xml", analyticsHandler.ExportXML)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/low-stock", inventoryHandler.GetLowStock)
	invGroup.Get("/overview", inventoryHandler.GetOverview)
	invGroup.Get("/products", inventoryHandler.ListProducts)
	invGroup.Get("/replenishment", inventoryHandler.GetReplenishmentList)

	// Orders
	ordersHandler := NewOrdersHandler(deps.OrdersUC)
	protected.Get("/orders/recent", ordersHandler.GetRecent)

	// Notifications
	notificationsHandler := NewNotificationsHandler(deps.NotificationsUC)
	notif := protected.Group("/notifications")
	notif.Get("/orders", notificationsHandler.GetOrders)
	notif.Post("/orders/ack", append(managers, notificationsHandler.AckOrders)...)

	// Expenses
	expensesHandler := NewExpensesHandler(deps.ExpensesUC)
	protected.Get("/expenses/summary", expensesHandler.GetSummary)
}
