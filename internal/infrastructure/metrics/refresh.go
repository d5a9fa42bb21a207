// Package metrics expone los colectores Prometheus del servicio.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RefreshMetrics registra los jobs del scheduler y los valores que publican.
// Implementa refresh.Metrics y refresh.Gauges.
type RefreshMetrics struct {
	duration  *prometheus.HistogramVec
	success   *prometheus.CounterVec
	failure   *prometheus.CounterVec
	lowStock  prometheus.Gauge
	newOrders prometheus.Gauge
}

// NewRefreshMetrics registra los colectores en reg. reg nil devuelve un
// RefreshMetrics inactivo.
func NewRefreshMetrics(reg prometheus.Registerer) *RefreshMetrics {
	if reg == nil {
		return &RefreshMetrics{}
	}
	m := &RefreshMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "job_duration_seconds",
			Help:    "Duración de los jobs del scheduler en segundos.",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
		success: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_success",
			Help: "Ejecuciones exitosas de jobs del scheduler.",
		}, []string{"job"}),
		failure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_failure",
			Help: "Ejecuciones fallidas de jobs del scheduler.",
		}, []string{"job"}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "low_stock_products",
			Help: "Productos con existencia bajo el umbral.",
		}),
		newOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "new_orders_pending",
			Help: "Órdenes posteriores a la última marca de visto.",
		}),
	}
	reg.MustRegister(m.duration, m.success, m.failure, m.lowStock, m.newOrders)
	return m
}

// ObserveDuration registra la duración del job.
func (m *RefreshMetrics) ObserveDuration(job string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(job)).Observe(d.Seconds())
}

// IncSuccess incrementa el contador de éxitos del job.
func (m *RefreshMetrics) IncSuccess(job string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure incrementa el contador de fallos del job.
func (m *RefreshMetrics) IncFailure(job string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// SetLowStock publica la cantidad de productos con stock bajo.
func (m *RefreshMetrics) SetLowStock(n int) {
	if m == nil || m.lowStock == nil {
		return
	}
	m.lowStock.Set(float64(n))
}

// SetNewOrders publica la cantidad de órdenes nuevas.
func (m *RefreshMetrics) SetNewOrders(n int) {
	if m == nil || m.newOrders == nil {
		return
	}
	m.newOrders.Set(float64(n))
}

func normalizeLabel(job string) string {
	if job == "" {
		return "unknown"
	}
	return job
}
