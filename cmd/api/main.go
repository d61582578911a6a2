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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/belleza-catalog-api/internal/application/catalog"
	"github.com/jhoicas/belleza-catalog-api/internal/domain/entity"
	"github.com/jhoicas/belleza-catalog-api/internal/infrastructure/backend"
	"github.com/jhoicas/belleza-catalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/belleza-catalog-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/belleza-catalog-api/internal/interfaces/http"
	"github.com/jhoicas/belleza-catalog-api/pkg/config"
	"github.com/jhoicas/belleza-catalog-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Precios como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Datastore legado: pool propio si LEGACY_DATABASE_URL está definido, si no el primario.
	legacyQ := postgres.Querier(pool)
	if cfg.Legacy.IsSet() {
		legacyPool, err := postgres.NewPool(ctx, cfg.Legacy)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL legado")
		}
		defer legacyPool.Close()
		legacyQ = legacyPool
	}

	zl := log.Zerolog()
	client := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, session.NewContextProvider(cfg.Backend.ServiceToken), zl)

	services := appcatalog.Sources[entity.CatalogService]{
		Primary: postgres.NewPrimaryServiceSource(pool),
		Generic: backend.NewGenericServiceSource(client),
	}
	products := appcatalog.Sources[entity.CatalogProduct]{
		Primary: postgres.NewPrimaryProductSource(pool),
		Generic: backend.NewGenericProductSource(client),
	}
	if cfg.Catalog.AtHomeEnabled {
		services.AtHome = backend.NewAtHomeServiceSource(client)
		products.AtHome = backend.NewAtHomeProductSource(client)
	}
	if cfg.Catalog.LegacyEnabled {
		services.Legacy = postgres.NewLegacyServiceSource(legacyQ)
		products.Legacy = postgres.NewLegacyProductSource(legacyQ)
	}

	serviceChain := appcatalog.NewServiceChain(services, zl)
	productChain := appcatalog.NewProductChain(products, zl)
	log.Info().
		Strs("services", serviceChain.Tiers()).
		Strs("products", productChain.Tiers()).
		Msg("cadenas de catálogo")

	catalogUC := appcatalog.NewUseCase(serviceChain, productChain, backend.NewWriter(client))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Belleza Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       zl,
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
