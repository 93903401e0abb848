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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/custodia-pro/internal/application/admin"
	"github.com/tu-usuario/custodia-pro/internal/application/auth"
	"github.com/tu-usuario/custodia-pro/internal/application/tracking"
	"github.com/tu-usuario/custodia-pro/internal/domain/entity"
	"github.com/tu-usuario/custodia-pro/internal/domain/repository"
	"github.com/tu-usuario/custodia-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/custodia-pro/internal/infrastructure/metrics"
	"github.com/tu-usuario/custodia-pro/internal/infrastructure/notify"
	"github.com/tu-usuario/custodia-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/custodia-pro/internal/interfaces/http"
	"github.com/tu-usuario/custodia-pro/pkg/config"
	"github.com/tu-usuario/custodia-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Feed de notificaciones + métricas como suscriptor
	bus := notify.NewBus(log)
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)
	bus.Subscribe(recorder.Observe)

	// Estado autoritativo: memoria o PostgreSQL según configuración
	var (
		txTracking    tracking.TxRunner
		txAdmin       admin.TxRunner
		productRepo   repository.ProductRepository
		eventRepo     repository.TrackingEventRepository
		roleRepo      repository.RoleRepository
		principalRepo repository.PrincipalRepository
	)
	if cfg.Store.Driver == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		runner := postgres.NewTxRunner(pool)
		txTracking = runner
		txAdmin = runner
		productRepo = postgres.NewProductRepository(pool)
		eventRepo = postgres.NewTrackingEventRepository(pool)
		roleRepo = postgres.NewRoleRepository(pool)
		principalRepo = postgres.NewPrincipalRepository(pool)
	} else {
		store := memory.NewStore()
		txTracking = store
		txAdmin = store
		productRepo = store
		eventRepo = store
		roleRepo = store
		principalRepo = store.Principals()
	}

	// Admin de arranque: sin él, ningún rol podría otorgarse jamás.
	if cfg.App.BootstrapAdmin != "" {
		if err := roleRepo.Grant(cfg.App.BootstrapAdmin, entity.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("otorgar admin de arranque")
		}
		log.Info().Str("principal", cfg.App.BootstrapAdmin).Msg("admin de arranque otorgado")
	}

	trackingUC := tracking.NewTrackingUseCase(txTracking, productRepo, eventRepo, bus)
	adminUC := admin.NewAdminUseCase(txAdmin, bus)
	authUC := auth.NewAuthUseCase(principalRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Custodia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		TrackingUC: trackingUC,
		AdminUC:    adminUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
