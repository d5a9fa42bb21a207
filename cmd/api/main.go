package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/stocks-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/auth"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/expenses"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/notifications"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/orders"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/refresh"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain/repository"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/redis"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/upstream"
	"github.com/jhoicas/stocks-dashboard-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/stocks-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/stocks-dashboard-api/pkg/config"
	"github.com/jhoicas/stocks-dashboard-api/pkg/logger"
)

// sources agrupa los puertos de lectura que usan los casos de uso.
type sources struct {
	orders   repository.OrderSource
	products repository.ProductSource
	expenses repository.ExpenseSource
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Source.Kind).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	loc := cfg.App.Location()
	upstreamClient := upstream.NewClient(cfg.Source, loc, log)

	// ── Fuentes de datos ────────────────────────────────────────────────────
	src := sources{orders: upstreamClient, products: upstreamClient, expenses: upstreamClient}
	var (
		pool     postgres.Querier
		snapshot *postgres.SnapshotWriter
	)
	if cfg.Source.Kind == config.SourcePostgres {
		p, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer p.Close()
		if err := postgres.EnsureSchema(ctx, p); err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		pool = p
		src = sources{
			orders:   postgres.NewOrderRepository(p),
			products: postgres.NewProductRepository(p),
			expenses: postgres.NewExpenseRepository(p),
		}
		if cfg.Source.SyncFromUpstream {
			snapshot = postgres.NewSnapshotWriter(p)
		}
	}

	// ── Marcas de notificación y lock del scheduler ─────────────────────────
	var (
		watermarks repository.WatermarkRepository = memory.NewWatermarkRepository()
		lock       refresh.Lock                   = memory.NewLock()
	)
	switch {
	case cfg.Redis.Enabled():
		rdb, err := infraredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		watermarks = infraredis.NewWatermarkRepository(rdb)
		if lock, err = infraredis.NewLock(rdb, "refresh", 0); err != nil {
			log.Fatal().Err(err).Msg("lock de Redis")
		}
	case pool != nil:
		watermarks = postgres.NewWatermarkRepository(pool)
	default:
		log.Warn().Msg("sin Redis ni PostgreSQL: marcas de notificación en memoria")
	}

	// ── Métricas ────────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	refreshMetrics := metrics.NewRefreshMetrics(reg)
	httpMetrics := metrics.NewHTTPMetrics(reg)

	// ── Casos de uso ────────────────────────────────────────────────────────
	settings := appanalytics.Settings{
		Location:          loc,
		LowStockThreshold: cfg.Dashboard.LowStockThreshold,
		TopN:              cfg.Dashboard.TopN,
	}
	dashboardUC := appanalytics.NewDashboardUseCase(src.orders, src.products, settings, log)
	reportUC := appanalytics.NewReportUseCase(src.orders, settings, log,
		infrapdf.NewSalesReportRenderer(cfg.App.Name),
		xmlexport.NewSalesReportRenderer(),
	)
	stockUC := inventory.NewStockUseCase(src.products, src.orders, cfg.Dashboard.LowStockThreshold, log)
	ordersUC := orders.NewOrdersUseCase(src.orders, loc)
	notificationsUC := notifications.NewUseCase(src.orders, watermarks, log)
	expensesUC := expenses.NewUseCase(src.expenses, loc)

	var authUC *auth.AuthUseCase
	if cfg.JWT.Secret != "" {
		accounts, err := auth.ParseAccounts(cfg.Auth.Users)
		if err != nil {
			log.Fatal().Err(err).Msg("cuentas AUTH_USERS")
		}
		authUC = auth.NewAuthUseCase(accounts, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
	} else {
		log.Warn().Msg("JWT_SECRET vacío: API sin autenticación")
	}

	// ── Scheduler ───────────────────────────────────────────────────────────
	if cfg.Refresh.Enabled {
		registry := refresh.NewRegistry()
		if snapshot != nil {
			registry.Register(refresh.NewSyncJob(upstreamClient, upstreamClient, upstreamClient, snapshot, log))
		}
		registry.Register(refresh.NewLowStockJob(stockUC, refreshMetrics, log))
		registry.Register(refresh.NewNotificationResetJob(notificationsUC, refreshMetrics, cfg.Refresh.NotifyMaxAge))
		registry.Register(refresh.NewNewOrdersJob(notificationsUC, refreshMetrics, log))

		svc, err := refresh.NewService(refresh.ServiceParams{
			Logger:   log,
			Registry: registry,
			Lock:     lock,
			Metrics:  refreshMetrics,
			Interval: cfg.Refresh.Interval,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("scheduler de refresco")
		}
		go func() {
			if err := svc.Run(ctx); err != nil {
				log.Error().Err(err).Msg("scheduler de refresco finalizado")
			}
		}()
	}

	// ── HTTP ────────────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpMetrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stocks Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "source": cfg.Source.Kind})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:     dashboardUC,
		ReportUC:        reportUC,
		StockUC:         stockUC,
		OrdersUC:        ordersUC,
		NotificationsUC: notificationsUC,
		ExpensesUC:      expensesUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
