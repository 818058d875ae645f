package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	ActivityLogUC *usecase.ActivityLogUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Todas las rutas pasan por el
// middleware de actor (token opcional; sin él, actor "system").
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(ActorMiddleware(deps.JWTSecret))

	// Products: las rutas estáticas van antes de /:id
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/search", productHandler.Search)
	products.Get("/category", productHandler.FilterByCategory)
	products.Get("/quantity", productHandler.FilterByQuantity)
	products.Get("/filter", productHandler.FilterCombined)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (create-only)
	categories := app.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	// Activity log (solo lectura)
	logs := app.Group("/productActivityLog")
	activityLogHandler := NewActivityLogHandler(deps.ActivityLogUC)
	logs.Get("/", activityLogHandler.List)
}
