package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lindakrystal/inventario/internal/application/auth"
	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/application/usecase"
)

// RouterDeps dependencias para el router de la API.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	RecordMovement *inventory.RecordMovementUseCase
	History        *inventory.MovementHistoryUseCase
	LowStock       *inventory.LowStockUseCase
	RecomputeStock *inventory.RecomputeStockUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Lectura: cualquier usuario autenticado. Escritura: solo admin
// (RequireWrite). El registro de usuarios también es de escritura para que
// un vendedor no pueda crearse cuentas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireWrite(), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	write := RequireWrite()

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", write, categoryHandler.Create)
	categories.Put("/:id", write, categoryHandler.Update)
	categories.Delete("/:id", write, categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", write, supplierHandler.Create)
	suppliers.Put("/:id", write, supplierHandler.Update)
	suppliers.Delete("/:id", write, supplierHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.RecomputeStock)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", write, productHandler.Create)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", write, productHandler.Delete)
	products.Post("/:id/recompute-stock", write, productHandler.RecomputeStock)

	// Stock movements (append-only: sin PUT ni DELETE)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordMovement, deps.History)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", write, movementHandler.Record)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.LowStock)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/low-stock/pdf", reportHandler.LowStockPDF)
}
