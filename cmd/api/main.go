package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/ventas-pro/internal/application/auth"
	"github.com/tu-usuario/ventas-pro/internal/application/inventory"
	"github.com/tu-usuario/ventas-pro/internal/application/statistics"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	infracache "github.com/tu-usuario/ventas-pro/internal/infrastructure/cache"
	infrapdf "github.com/tu-usuario/ventas-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/ventas-pro/internal/interfaces/http"
	"github.com/tu-usuario/ventas-pro/pkg/config"
	"github.com/tu-usuario/ventas-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de estadísticas: opcional, solo si hay Redis configurado.
	var statsCache statistics.Cache
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, estadísticas sin cache")
		} else {
			statsCache = redisCache
			defer redisCache.Close()
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	decreaseStockUC := inventory.NewDecreaseStockUseCase(txRunner)
	statisticsUC := statistics.NewUseCase(movementRepo, statsCache)
	statsReportUC := statistics.NewReportUseCase(statisticsUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	registerSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		CustomerUC:    customerUC,
		DecreaseStock: decreaseStockUC,
		StatisticsUC:  statisticsUC,
		StatsReportUC: statsReportUC,
		JWTSecret:     cfg.JWT.Secret,
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

// registerSwagger monta la UI de documentación solo si el spec existe en disco;
// el middleware de contrib lee el archivo al construirse y entra en pánico si
// falta, y la API debe arrancar igual sin él.
func registerSwagger(app *fiber.App, log *logger.Logger, specPath string) {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().Str("path", specPath).Msg("swagger.json no encontrado, UI de docs deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "Ventas Pro API",
	}))
}
