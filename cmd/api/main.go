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

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/stock"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/infrastructure/postgres"
	httpRouter "github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/interfaces/http"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/pkg/config"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/pkg/logger"
)

// @title        Inventario API
// @version      1.0
// @description  Gestión de inventario: categorías, productos, libro de movimientos de stock y dashboard.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
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

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	applyMovementUC := stock.NewApplyMovementUseCase(txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, txRunner)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, categoryRepo)

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
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		ApplyMovement: applyMovementUC,
		MovementUC:    movementUC,
		DashboardUC:   dashboardUC,
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
