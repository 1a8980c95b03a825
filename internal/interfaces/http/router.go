package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/auth"
	"github.com/tu-usuario/ventas-pro/internal/application/inventory"
	"github.com/tu-usuario/ventas-pro/internal/application/statistics"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	CustomerUC    *usecase.CustomerUseCase
	DecreaseStock *inventory.DecreaseStockUseCase
	StatisticsUC  *statistics.UseCase
	StatsReportUC *statistics.ReportUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + ventas (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.DecreaseStock)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:term", productHandler.GetByTerm)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/decrease-stock", productHandler.DecreaseStock)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)

	// Statistics (protegido)
	statsGroup := protected.Group("/statistics")
	statsHandler := NewStatisticsHandler(deps.StatisticsUC, deps.StatsReportUC)
	statsGroup.Get("/", statsHandler.Get)
	statsGroup.Get("/report.pdf", statsHandler.GetReportPDF)
}
