package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshMetrics_ExportaContadoresYGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRefreshMetrics(reg)
	m.ObserveDuration("low_stock", 250*time.Millisecond)
	m.IncSuccess("low_stock")
	m.IncFailure("")
	m.SetLowStock(3)
	m.SetNewOrders(5)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	v, err := counterValue(mfs, "job_success", "job", "low_stock")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)

	v, err = counterValue(mfs, "job_failure", "job", "unknown")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)

	assert.Equal(t, float64(3), findFamily(mfs, "low_stock_products").GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, float64(5), findFamily(mfs, "new_orders_pending").GetMetric()[0].GetGauge().GetValue())
	assert.Greater(t, findFamily(mfs, "job_duration_seconds").GetMetric()[0].GetHistogram().GetSampleSum(), float64(0))
}

func TestRefreshMetrics_SinRegistroNoFalla(t *testing.T) {
	m := NewRefreshMetrics(nil)
	assert.NotPanics(t, func() {
		m.IncSuccess("x")
		m.SetLowStock(1)
	})
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	v, err := counterValue(mfs, "http_requests_total", "route", "/api/orders/:id")
	require.NoError(t, err)
	assert.Equal(t, float64(1), v)
}

// ── Helpers de test ─────────────────────────────────────────────────────────

func findFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("métrica %q no encontrada", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, lp := range metric.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("métrica %q sin etiqueta %s=%s", name, label, value)
}
