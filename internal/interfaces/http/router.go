package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/auth"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
	"github.com/ArjunTewari/plexora/internal/infrastructure/realtime"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AnomalyUC    *usecase.AnomalyUseCase
	CompetitorUC *usecase.CompetitorUseCase
	AnalyticsUC  *usecase.AnalyticsUseCase
	ReportUC     *usecase.ReportUseCase
	AIUC         *usecase.AIUseCase
	SalesUC      *usecase.SalesUseCase
	Hub          *realtime.Hub
	Metrics      *metrics.Metrics
	JWTSecret    string
	Log          zerolog.Logger
}

// ServerConfig opciones del servidor Fiber.
type ServerConfig struct {
	AppName     string
	CORSOrigins string // vacío = sin CORS
	SwaggerFile string // tiene prioridad sobre SwaggerJSON si existe
	SwaggerJSON []byte // especificación embebida
	BodyLimitMB int
}

// NewServer arma la app Fiber con middlewares, endpoints operativos y rutas de la API.
func NewServer(cfg ServerConfig, deps RouterDeps) *fiber.App {
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 10
	}
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    bodyLimit * 1024 * 1024,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(recover.New())
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		}))
	}
	app.Use(RequestLogger(deps.Log))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	// Swagger UI: http://localhost:<port>/docs
	swaggerCfg := swagger.Config{BasePath: "/", Path: "docs", Title: "Plexora API"}
	if _, err := os.Stat(cfg.SwaggerFile); cfg.SwaggerFile != "" && err == nil {
		swaggerCfg.FilePath = cfg.SwaggerFile
		app.Use(swagger.New(swaggerCfg))
	} else if len(cfg.SwaggerJSON) > 0 {
		swaggerCfg.FileContent = cfg.SwaggerJSON
		app.Use(swagger.New(swaggerCfg))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Todo lo demás requiere Bearer Token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	anomalyHandler := NewAnomalyHandler(deps.AnomalyUC, deps.Log)
	protected.Post("/anomaly-detection/detect", anomalyHandler.Detect)
	protected.Get("/anomaly-detection/list", anomalyHandler.List)

	competitorHandler := NewCompetitorHandler(deps.CompetitorUC, deps.Log)
	canWrite := RequireRole(entity.RoleOwner, entity.RoleManager)
	protected.Get("/competitor-analysis/list", competitorHandler.List)
	protected.Post("/competitor-analysis/add", canWrite, competitorHandler.Add)
	protected.Put("/competitor-analysis/update", canWrite, competitorHandler.Update)
	protected.Delete("/competitor-analysis/delete", canWrite, competitorHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC, deps.Log)
	protected.Get("/dashboard-summary", dashboardHandler.Summary)
	protected.Post("/forecast-sales", dashboardHandler.Forecast)

	reportHandler := NewReportHandler(deps.ReportUC, deps.Metrics, deps.Log)
	protected.Post("/reports/generate", reportHandler.Generate)
	protected.Get("/reports/history", reportHandler.History)
	protected.Get("/reports/download/:id", reportHandler.Download)

	aiHandler := NewAIHandler(deps.AIUC, deps.Metrics, deps.Log)
	protected.Post("/ask-ai", aiHandler.Ask)

	salesHandler := NewSalesHandler(deps.SalesUC, deps.Metrics, deps.Log)
	protected.Post("/upload-data", salesHandler.Upload)
	protected.Get("/sales", salesHandler.List)

	if deps.Hub != nil {
		socketHandler := NewSocketHandler(deps.Hub, deps.Log)
		protected.Get("/socket", socketHandler.RequireUpgrade, socketHandler.Stream())
	}
}
