package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunTewari/plexora/internal/application/auth"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
	"github.com/ArjunTewari/plexora/internal/infrastructure/export"
	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
	"github.com/ArjunTewari/plexora/internal/infrastructure/realtime"
	apphttp "github.com/ArjunTewari/plexora/internal/interfaces/http"
)

type testEnv struct {
	app *fiber.App
	db  *memDB
	hub *realtime.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newMemDB()
	log := zerolog.Nop()
	gen := simulation.NewGenerator()
	hub := realtime.NewHub(log)
	aiUC := usecase.NewAIUseCase(nil, time.Second)

	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(memUsers{db}, memRestaurants{db}, memTx{db}, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		AnomalyUC:    usecase.NewAnomalyUseCase(memAnomalies{db}, memTx{db}, gen, aiUC, log),
		CompetitorUC: usecase.NewCompetitorUseCase(memCompetitors{db}, gen),
		AnalyticsUC:  usecase.NewAnalyticsUseCase(gen),
		ReportUC: usecase.NewReportUseCase(memReports{db}, memSales{db}, memRestaurants{db}, aiUC, gen, log,
			export.NewCSVRenderer(), export.NewXMLRenderer()),
		AIUC:      aiUC,
		SalesUC:   usecase.NewSalesUseCase(memSales{db}, memTx{db}, hub, log),
		Hub:       hub,
		Metrics:   metrics.New("plexora_test"),
		JWTSecret: testJWTSecret,
		Log:       log,
	}
	app := apphttp.NewServer(apphttp.ServerConfig{AppName: "plexora-test"}, deps)
	return &testEnv{app: app, db: db, hub: hub}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

// signup registra un restaurante y devuelve el token del dueño y su restaurantId.
func (e *testEnv) signup(t *testing.T, email string) (token, restaurantID string) {
	t.Helper()
	resp, _ := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ana", "email": email, "password": "supersecret", "restaurantName": "Casa " + email,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": "supersecret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	return body["token"].(string), user["restaurantId"].(string)
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := newTestEnv(t)
	token, restaurantID := env.signup(t, "owner@plexora.test")

	resp, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "owner", body["user"].(map[string]any)["role"])
	rest := body["restaurant"].(map[string]any)
	assert.Equal(t, restaurantID, rest["id"])
	assert.Equal(t, "Casa owner@plexora.test", rest["name"])
}

func TestAuth_EmailDuplicado409(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "dup@plexora.test")

	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Otro", "email": "DUP@plexora.test", "password": "supersecret", "restaurantName": "Otro",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "EMAIL_EXISTS", body["code"])

	require.Len(t, env.db.users, 1, "el segundo registro no crea usuario")
	assert.Equal(t, "Ana", env.db.users[0].Name)
	assert.Len(t, env.db.restaurants, 1, "ni restaurante huérfano")
}

func TestAuth_RegistroInvalido400(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "x@y.z"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestAuth_CredencialesInvalidas401(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@plexora.test")

	for _, creds := range []map[string]string{
		{"email": "a@plexora.test", "password": "incorrecta"},
		{"email": "nadie@plexora.test", "password": "supersecret"},
	} {
		resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
	}
}

func TestRutasProtegidas_SinToken401(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/api/dashboard-summary", "/api/competitor-analysis/list", "/api/reports/history", "/api/sales"} {
		resp, body := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "MISSING_TOKEN", body["code"], path)
	}
}

// ── Anomalías ─────────────────────────────────────────────────────────────────

func TestAnomalias_DetectarSemanaAlta(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "anom@plexora.test")

	before := time.Now().AddDate(0, 0, -7).Add(-time.Minute)
	resp, body := env.do(t, http.MethodPost, "/api/anomaly-detection/detect", token,
		map[string]string{"timeframe": "week", "sensitivity": "high"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	anomalies := body["anomalies"].([]any)
	require.Len(t, anomalies, 5)
	for _, a := range anomalies {
		detected, err := time.Parse(time.RFC3339, a.(map[string]any)["detectedAt"].(string))
		require.NoError(t, err)
		assert.True(t, detected.After(before))
	}
	assert.NotContains(t, body, "analysis", "sin LLM no hay análisis")

	resp, body = env.do(t, http.MethodGet, "/api/anomaly-detection/list?limit=3", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["anomalies"].([]any), 3)
}

func TestAnomalias_DetectarSinParametros400(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "anom400@plexora.test")

	for _, in := range []map[string]string{
		{},
		{"timeframe": "week"},
		{"sensitivity": "high"},
	} {
		resp, body := env.do(t, http.MethodPost, "/api/anomaly-detection/detect", token, in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, in)
		assert.Equal(t, "VALIDATION", body["code"], in)
		assert.Equal(t, false, body["success"])
	}

	resp, _ := env.do(t, http.MethodPost, "/api/anomaly-detection/detect", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cuerpo vacío")
	assert.Empty(t, env.db.anomalies)
}

// ── Competidores ──────────────────────────────────────────────────────────────

func TestCompetidores_SeedsCuandoVacio(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "seed@plexora.test")

	resp, body := env.do(t, http.MethodGet, "/api/competitor-analysis/list", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["competitors"].([]any), 3)
	assert.Empty(t, env.db.competitors, "los de ejemplo no se guardan")
}

func TestCompetidores_CrudYAislamiento(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.signup(t, "a@plexora.test")
	tokenB, _ := env.signup(t, "b@plexora.test")

	resp, body := env.do(t, http.MethodPost, "/api/competitor-analysis/add", tokenA, map[string]any{
		"name": "Burger Barn", "location": "Centro", "popularItems": []string{"Classic Burger"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	comp := body["competitor"].(map[string]any)
	id := comp["id"].(string)
	assert.Equal(t, 1.0, comp["priceIndex"])

	// B no ve ni borra los competidores de A.
	resp, body = env.do(t, http.MethodDelete, "/api/competitor-analysis/delete", tokenB, map[string]string{"id": id})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
	resp, _ = env.do(t, http.MethodPut, "/api/competitor-analysis/update", tokenB, map[string]any{"id": id, "name": "X"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = env.do(t, http.MethodPut, "/api/competitor-analysis/update", tokenA, map[string]any{"id": id, "priceIndex": 1.2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.2, body["competitor"].(map[string]any)["priceIndex"])
	assert.Equal(t, "Burger Barn", body["competitor"].(map[string]any)["name"])

	resp, body = env.do(t, http.MethodDelete, "/api/competitor-analysis/delete", tokenA, map[string]string{"id": id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, body["deletedCount"])
}

func TestCompetidores_AnalistaNoEscribe(t *testing.T) {
	env := newTestEnv(t)
	_, restaurantID := env.signup(t, "r@plexora.test")
	analyst := strings.TrimPrefix(tokenFor(t, restaurantID, "analyst"), "Bearer ")

	resp, _ := env.do(t, http.MethodPost, "/api/competitor-analysis/add", analyst, map[string]any{"name": "X", "location": "Y"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/competitor-analysis/list", analyst, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ── Analytics / IA ────────────────────────────────────────────────────────────

func TestDashboardYForecast(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "d@plexora.test")

	resp, body := env.do(t, http.MethodGet, "/api/dashboard-summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["data"])

	resp, body = env.do(t, http.MethodPost, "/api/forecast-sales", token, map[string]any{"period": "week", "itemIds": []string{"1", "2"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, body["forecast"])
}

func TestForecast_SinPeriodo400(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "f400@plexora.test")

	resp, body := env.do(t, http.MethodPost, "/api/forecast-sales", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])

	resp, _ = env.do(t, http.MethodPost, "/api/forecast-sales", token, map[string]any{"itemIds": []string{"1"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/forecast-sales", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cuerpo vacío")

	resp, body = env.do(t, http.MethodPost, "/api/forecast-sales", token, map[string]any{"period": "decade"})
	require.Equal(t, http.StatusOK, resp.StatusCode, "periodo no reconocido usa el valor por defecto")
	assert.NotNil(t, body["forecast"])
}

func TestAskAI_SinProveedor503(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "ai@plexora.test")

	resp, body := env.do(t, http.MethodPost, "/api/ask-ai", token, map[string]string{"query": "¿Cómo subo ventas?"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "AI_UNAVAILABLE", body["code"])

	resp, _ = env.do(t, http.MethodPost, "/api/ask-ai", token, map[string]string{"query": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── Ventas y reportes ─────────────────────────────────────────────────────────

func TestUpload_JSONVacioYListado(t *testing.T) {
	env := newTestEnv(t)
	token, restaurantID := env.signup(t, "s@plexora.test")
	sub := env.hub.Subscribe(restaurantID)
	defer env.hub.Unsubscribe(sub)

	resp, body := env.do(t, http.MethodPost, "/api/upload-data", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.0, body["recordsProcessed"])
	assert.Equal(t, "Data uploaded successfully", body["message"])

	day := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	resp, body = env.do(t, http.MethodPost, "/api/upload-data", token, map[string]any{"sales": []map[string]any{
		{"date": day, "itemId": "1", "itemName": "Burger", "quantity": 2, "unitPrice": "12.50"},
		{"date": day, "itemId": "2", "itemName": "Fries", "quantity": 1, "unitPrice": "4"},
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2.0, body["recordsProcessed"])

	select {
	case msg := <-sub.Events():
		assert.Contains(t, string(msg), `"event":"sales-update"`)
	case <-time.After(time.Second):
		t.Fatal("no se publicó sales-update")
	}

	resp, body = env.do(t, http.MethodGet, "/api/sales", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["sales"].([]any), 2)

	resp, _ = env.do(t, http.MethodGet, "/api/sales?startDate=ayer", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpload_MultipartCSV(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "csv@plexora.test")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "ventas.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("date,item_id,item_name,quantity,unit_price\n2026-03-01,1,Burger,2,12\n2026-03-01,2,Fries,1,4\n2026-03-02,1,Burger,1,12\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-data", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, body := env.send(t, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3.0, body["recordsProcessed"])

	// Extensión no soportada
	buf.Reset()
	mw = multipart.NewWriter(&buf)
	fw, _ = mw.CreateFormFile("file", "ventas.pdf")
	_, _ = fw.Write([]byte("%PDF"))
	require.NoError(t, mw.Close())
	req = httptest.NewRequest(http.MethodPost, "/api/upload-data", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, _ = env.send(t, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportes_GenerarHistorialYDescargar(t *testing.T) {
	env := newTestEnv(t)
	tokenA, _ := env.signup(t, "rep@plexora.test")
	tokenB, _ := env.signup(t, "otro@plexora.test")

	resp, body := env.do(t, http.MethodGet, "/api/reports/history", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["reports"].([]any), 5, "historial de ejemplo cuando no hay reportes")

	day := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	resp, _ = env.do(t, http.MethodPost, "/api/upload-data", tokenA, map[string]any{"sales": []map[string]any{
		{"date": day, "itemId": "1", "itemName": "Burger", "quantity": 2, "unitPrice": "12"},
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/reports/generate", tokenA, map[string]any{
		"reportType": "sales", "format": "csv", "timeframe": "week",
		"sections": map[string]bool{"summary": true, "details": true, "recommendations": true},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	url := body["downloadUrl"].(string)
	assert.True(t, strings.HasPrefix(url, "/api/reports/download/"))
	report := body["report"].(map[string]any)
	assert.True(t, strings.HasPrefix(report["name"].(string), "Sales Report - "))

	resp, body = env.do(t, http.MethodGet, "/api/reports/history", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["reports"].([]any), 1)

	resp, _ = env.do(t, http.MethodGet, url, tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=\"sales-report-")
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "1,Burger,2,12.00,24.00")

	resp, _ = env.do(t, http.MethodGet, url, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportes_ValidacionYFormatoNoDisponible(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "val@plexora.test")

	resp, _ := env.do(t, http.MethodPost, "/api/reports/generate", token, map[string]any{
		"reportType": "sales", "format": "docx", "timeframe": "week",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = env.do(t, http.MethodPost, "/api/reports/generate", token, map[string]any{
		"reportType": "sales", "format": "pdf", "timeframe": "week",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "pdf no registrado en este entorno")

	resp, _ = env.do(t, http.MethodPost, "/api/reports/generate", token, map[string]any{
		"reportType": "sales", "format": "csv", "timeframe": "custom",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "custom sin fechas")
}

// ── Operativos ────────────────────────────────────────────────────────────────

func TestHealthMetricsY404(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, _ = env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "plexora_test_http_requests_total")

	resp, body = env.do(t, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestSocket_SinUpgrade426(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup(t, "ws@plexora.test")

	resp, _ := env.do(t, http.MethodGet, "/api/socket", token, nil)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
