// Package metrics expone métricas Prometheus del servidor HTTP y de los casos de uso.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics registro propio (no el global) con los colectores de la API.
type Metrics struct {
	registry      *prometheus.Registry
	httpReqCnt    *prometheus.CounterVec
	httpDur       *prometheus.HistogramVec
	httpInfl      prometheus.Gauge
	salesImported prometheus.Counter
	reportsGen    *prometheus.CounterVec
	aiCalls       *prometheus.CounterVec
}

// New registra los colectores bajo el namespace dado.
func New(namespace string) *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: r,
		httpReqCnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total", Help: "Peticiones HTTP por método, ruta y estado.",
		}, []string{"method", "route", "status"}),
		httpDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds", Help: "Latencia de peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		httpInfl: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "http_requests_inflight", Help: "Peticiones HTTP en curso.",
		}),
		salesImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "sales_records_imported_total", Help: "Registros de venta importados.",
		}),
		reportsGen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "reports_generated_total", Help: "Reportes generados por formato.",
		}, []string{"format"}),
		aiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "ai_requests_total", Help: "Consultas al LLM por resultado.",
		}, []string{"result"}),
	}
	r.MustRegister(m.httpReqCnt, m.httpDur, m.httpInfl, m.salesImported, m.reportsGen, m.aiCalls)
	return m
}

// Middleware mide cada petición. La ruta es el patrón registrado (ej. /api/reports/download/:id).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		m.httpInfl.Inc()
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		code := strconv.Itoa(status)
		m.httpReqCnt.WithLabelValues(c.Method(), route, code).Inc()
		m.httpDur.WithLabelValues(c.Method(), route, code).Observe(time.Since(start).Seconds())
		m.httpInfl.Dec()
		return err
	}
}

// SalesImported suma registros de venta importados.
func (m *Metrics) SalesImported(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.salesImported.Add(float64(n))
}

// ReportGenerated cuenta un reporte generado en el formato dado.
func (m *Metrics) ReportGenerated(format string) {
	if m == nil {
		return
	}
	m.reportsGen.WithLabelValues(format).Inc()
}

// AIRequest cuenta una consulta al LLM ("ok", "error", "unavailable").
func (m *Metrics) AIRequest(result string) {
	if m == nil {
		return
	}
	m.aiCalls.WithLabelValues(result).Inc()
}

// Handler exposición en formato Prometheus; se monta en fiber con adaptor.HTTPHandler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry para tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
