package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
)

func TestMiddleware_CuentaPorRuta(t *testing.T) {
	m := metrics.New("plexora")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/reports/download/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/reports/download/r-"+string(rune('a'+i)), nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body),
		`plexora_http_requests_total{method="GET",route="/api/reports/download/:id",status="404"} 2`)
}

func TestContadoresDeDominio(t *testing.T) {
	m := metrics.New("plexora")
	m.SalesImported(5)
	m.SalesImported(0)
	m.ReportGenerated("pdf")
	m.AIRequest("unavailable")

	n, err := testutil.GatherAndCount(m.Registry(), "plexora_sales_records_imported_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expected := `
# HELP plexora_reports_generated_total Reportes generados por formato.
# TYPE plexora_reports_generated_total counter
plexora_reports_generated_total{format="pdf"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "plexora_reports_generated_total"))

	var nilMetrics *metrics.Metrics
	assert.NotPanics(t, func() { nilMetrics.ReportGenerated("csv") })
}
