package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/auth"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/expenses"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/notifications"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/orders"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/stocks-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// ── Fuentes falsas ──────────────────────────────────────────────────────────

type stubSource struct {
	orders   []entity.Order
	products []entity.Product
	expenses []entity.Expense
	err      error
}

func (s *stubSource) ListOrders(context.Context) ([]entity.Order, error)   { return s.orders, s.err }
func (s *stubSource) ListInvoices(context.Context) ([]entity.Order, error) { return s.orders, s.err }
func (s *stubSource) ListProducts(context.Context) ([]entity.Product, error) {
	return s.products, s.err
}
func (s *stubSource) ListExpenses(context.Context) ([]entity.Expense, error) {
	return s.expenses, s.err
}

func sampleSource() *stubSource {
	now := time.Now().UTC()
	return &stubSource{
		orders: []entity.Order{
			{
				ID: "o1", Kind: entity.KindOrder, InvoiceNumber: "INV-001", CustomerName: "Ama",
				PaymentMethod: entity.PaymentCash, TotalAmount: "40",
				Items: []entity.LineItem{
					{ProductName: "Rice", Price: "10", Quantity: "3"},
					{ProductName: "Oil", Price: "5", Quantity: "2"},
				},
				CreatedAt: now.Add(-2 * time.Hour),
			},
			{
				ID: "o2", Kind: entity.KindOrder, InvoiceNumber: "INV-002", CustomerName: "Kofi",
				PaymentMethod: entity.PaymentMomo, TotalAmount: "20",
				Items:     []entity.LineItem{{ProductName: "Rice", Price: "10", Quantity: "2"}},
				CreatedAt: now.Add(-30 * time.Hour),
			},
		},
		products: []entity.Product{
			{ID: "p1", Name: "Rice", Quantity: 4},
			{ID: "p2", Name: "Oil", Quantity: 50},
		},
		expenses: []entity.Expense{
			{ID: "e1", Description: "Rent", Amount: "100", Category: "rent", Date: now.Add(-24 * time.Hour)},
		},
	}
}

// ── Helpers de app ──────────────────────────────────────────────────────────

const handlerSecret = "handlers-test-secret"

func newDeps(t *testing.T, src *stubSource, secret string) apphttp.RouterDeps {
	t.Helper()
	log := logger.Nop()
	settings := appanalytics.Settings{Location: time.UTC}

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	accounts := []auth.Account{
		{Username: "esi", PasswordHash: string(hash), Role: auth.RoleManager},
		{Username: "yaw", PasswordHash: string(hash), Role: auth.RoleStaff},
	}

	return apphttp.RouterDeps{
		DashboardUC:     appanalytics.NewDashboardUseCase(src, src, settings, log),
		ReportUC:        appanalytics.NewReportUseCase(src, settings, log, xmlexport.NewSalesReportRenderer()),
		StockUC:         inventory.NewStockUseCase(src, src, 10, log),
		OrdersUC:        orders.NewOrdersUseCase(src, time.UTC),
		NotificationsUC: notifications.NewUseCase(src, memory.NewWatermarkRepository(), log),
		ExpensesUC:      expenses.NewUseCase(src, time.UTC),
		AuthUC:          auth.NewAuthUseCase(accounts, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}),
		JWTSecret:       secret,
	}
}

func newApp(t *testing.T, src *stubSource, secret string) *fiber.App {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, newDeps(t, src, secret))
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body := bytes.NewBufferString(fmt.Sprintf(`{"username":%q,"password":"s3cret"}`, username))
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ── Dashboard ───────────────────────────────────────────────────────────────

func TestDashboardSummary_OK(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/dashboard/summary?timeframe=daily", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.DashboardSummaryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 54, out.StockTotal)
	assert.Equal(t, 10, out.LowStockThreshold)
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "Rice", out.LowStock[0].Name)
}

func TestDashboardSummary_ParametrosInvalidos(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	for _, q := range []string{"timeframe=yearly", "month=13", "top_n=0&month=0&year=1990"} {
		t.Run(q, func(t *testing.T) {
			resp := get(t, app, "/api/dashboard/summary?"+q, "")
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
		})
	}
}

func TestDashboardSummary_ErrorUpstream(t *testing.T) {
	src := sampleSource()
	src.err = fmt.Errorf("GET /orders: %w", domain.ErrUpstream)
	app := newApp(t, src, "")

	resp := get(t, app, "/api/dashboard/summary", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "UPSTREAM_ERROR", decodeError(t, resp).Code)
}

func TestDashboardSummary_FuenteNoDisponible(t *testing.T) {
	src := sampleSource()
	src.err = fmt.Errorf("dial: %w", domain.ErrSourceUnavailable)
	app := newApp(t, src, "")

	resp := get(t, app, "/api/inventory/low-stock", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "SOURCE_UNAVAILABLE", decodeError(t, resp).Code)
}

// ── Analytics / inventario / órdenes ────────────────────────────────────────

func TestTopProducts_RangoInvalido(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/analytics/top-products?from=01-02-2024", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLowStock_UmbralPorQuery(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/inventory/low-stock?threshold=100", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LowStockDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 100, out.Threshold)
	assert.Equal(t, 2, out.Count)
}

func TestRecentOrders_SearchByInvalido(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/orders/recent?search_by=phone", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExpensesSummary_OK(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/expenses/summary", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ── Reportes ────────────────────────────────────────────────────────────────

func TestReportXML_Adjunto(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/reports/sales.xml?timeframe=monthly", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "xml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<SalesReport")
}

func TestReportPDF_SinRenderer(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/reports/sales.pdf", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED_FORMAT", decodeError(t, resp).Code)
}

// ── Auth y roles ────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinToken(t *testing.T) {
	app := newApp(t, sampleSource(), handlerSecret)
	resp := get(t, app, "/api/dashboard/summary", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReportes_StaffBloqueado(t *testing.T) {
	app := newApp(t, sampleSource(), handlerSecret)
	token := login(t, app, "yaw")

	resp := get(t, app, "/api/dashboard/summary", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/reports/sales.xml", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestReportes_ManagerPermitido(t *testing.T) {
	app := newApp(t, sampleSource(), handlerSecret)
	token := login(t, app, "esi")

	resp := get(t, app, "/api/reports/sales.xml", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	app := newApp(t, sampleSource(), handlerSecret)
	body := bytes.NewBufferString(`{"username":"esi","password":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

// ── Middlewares ─────────────────────────────────────────────────────────────

func TestRequestID_GeneraYReutiliza(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestReplenishment_OK(t *testing.T) {
	app := newApp(t, sampleSource(), "")
	resp := get(t, app, "/api/inventory/replenishment", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Total          int                              `json:"total"`
		Replenishments []dto.ReplenishmentSuggestionDTO `json:"replenishments"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Replenishments, 1)
	assert.Equal(t, "Rice", out.Replenishments[0].Product.Name)
	assert.True(t, out.Replenishments[0].SuggestedQty.IsPositive())
}
