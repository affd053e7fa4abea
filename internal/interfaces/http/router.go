package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/stock"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
)

// RouterDeps agrupa los casos de uso que el router necesita.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	ApplyMovement *stock.ApplyMovementUseCase
	MovementUC    *usecase.MovementUseCase
	DashboardUC   *usecase.DashboardUseCase
}

// Router monta todas las rutas de la API bajo /api. Las rutas estáticas van
// antes que las paramétricas para que /search o /low-stock no caigan en /:id.
func Router(app *fiber.App, deps RouterDeps) {
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.ApplyMovement)
	movementHandler := NewMovementHandler(deps.MovementUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	api := app.Group("/api")

	categories := api.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", stockHandler.Apply)

	movements := api.Group("/stock-movements")
	movements.Get("/", movementHandler.ListAll)
	movements.Get("/range", movementHandler.ListByDateRange)
	movements.Get("/product/:productId", movementHandler.ListByProduct)
	movements.Get("/:id", movementHandler.GetByID)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/metrics", dashboardHandler.Metrics)
}
