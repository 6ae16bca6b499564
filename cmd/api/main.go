package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ArjunTewari/plexora/docs"
	"github.com/ArjunTewari/plexora/internal/application/auth"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
	infraai "github.com/ArjunTewari/plexora/internal/infrastructure/ai"
	"github.com/ArjunTewari/plexora/internal/infrastructure/export"
	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
	infrapdf "github.com/ArjunTewari/plexora/internal/infrastructure/pdf"
	"github.com/ArjunTewari/plexora/internal/infrastructure/postgres"
	"github.com/ArjunTewari/plexora/internal/infrastructure/realtime"
	httpRouter "github.com/ArjunTewari/plexora/internal/interfaces/http"
	"github.com/ArjunTewari/plexora/pkg/config"
	"github.com/ArjunTewari/plexora/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App, cfg.Log)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	restaurantRepo := postgres.NewRestaurantRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	competitorRepo := postgres.NewCompetitorRepository(pool)
	anomalyRepo := postgres.NewAnomalyRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Canal en vivo: en proceso, o fan-out por Redis si REDIS_ADDR está definido.
	var hubOpts []realtime.Option
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		hubOpts = append(hubOpts, realtime.WithRedis(rdb, cfg.Redis.Channel))
	}
	hub := realtime.NewHub(log.With().Str("component", "realtime").Logger(), hubOpts...)
	if err := hub.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("inicio del canal en vivo")
	}
	defer hub.Close()

	llm := infraai.NewLLMService(cfg.AI)
	if llm == nil {
		log.Warn().Str("provider", cfg.AI.Provider).Msg("IA deshabilitada: falta API key del proveedor")
	}
	aiUC := usecase.NewAIUseCase(llm, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)

	gen := simulation.NewGenerator()
	authUC := auth.NewAuthUseCase(userRepo, restaurantRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	anomalyUC := usecase.NewAnomalyUseCase(anomalyRepo, txRunner, gen, aiUC, log)
	competitorUC := usecase.NewCompetitorUseCase(competitorRepo, gen)
	analyticsUC := usecase.NewAnalyticsUseCase(gen)
	salesUC := usecase.NewSalesUseCase(saleRepo, txRunner, hub, log)
	reportUC := usecase.NewReportUseCase(reportRepo, saleRepo, restaurantRepo, aiUC, gen, log,
		infrapdf.NewReportRenderer(),
		export.NewCSVRenderer(),
		export.NewExcelRenderer(),
		export.NewXMLRenderer(),
	)

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		SwaggerFile: cfg.App.SwaggerFile,
		SwaggerJSON: docs.JSON(),
	}, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AnomalyUC:    anomalyUC,
		CompetitorUC: competitorUC,
		AnalyticsUC:  analyticsUC,
		ReportUC:     reportUC,
		AIUC:         aiUC,
		SalesUC:      salesUC,
		Hub:          hub,
		Metrics:      metrics.New(cfg.Metrics.Namespace),
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
