package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/lindakrystal/inventario/internal/application/auth"
	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/application/usecase"
)

// RouterDeps dependencias para las páginas HTML.
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	RecordMovement *inventory.RecordMovementUseCase
	History        *inventory.MovementHistoryUseCase
	LowStock       *inventory.LowStockUseCase
	AuthUC         *auth.AuthUseCase
	SessionStore   *session.Store
}

// Router registra las rutas de las páginas HTML.
//
// Los formularios usan POST plano (sin métodos PUT/DELETE simulados): las
// acciones destructivas van a /x/:id/delete.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionStore)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Páginas protegidas por sesión.
	pages := app.Group("/", RequireSession(deps.SessionStore))
	write := RequireWriteSession()

	dashboardHandler := NewDashboardHandler(deps.ProductUC, deps.LowStock, deps.History)
	pages.Get("/", dashboardHandler.Index)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	pages.Get("/categories", categoryHandler.List)
	pages.Get("/categories/new", write, categoryHandler.NewForm)
	pages.Post("/categories", write, categoryHandler.Create)
	pages.Get("/categories/:id/edit", write, categoryHandler.EditForm)
	pages.Post("/categories/:id", write, categoryHandler.Update)
	pages.Post("/categories/:id/delete", write, categoryHandler.Delete)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	pages.Get("/suppliers", supplierHandler.List)
	pages.Get("/suppliers/new", write, supplierHandler.NewForm)
	pages.Post("/suppliers", write, supplierHandler.Create)
	pages.Get("/suppliers/:id/edit", write, supplierHandler.EditForm)
	pages.Post("/suppliers/:id", write, supplierHandler.Update)
	pages.Post("/suppliers/:id/delete", write, supplierHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC, deps.CategoryUC, deps.SupplierUC)
	pages.Get("/products", productHandler.List)
	pages.Get("/products/new", write, productHandler.NewForm)
	pages.Post("/products", write, productHandler.Create)
	pages.Get("/products/:id", productHandler.Detail)
	pages.Get("/products/:id/edit", write, productHandler.EditForm)
	pages.Post("/products/:id", write, productHandler.Update)
	pages.Post("/products/:id/delete", write, productHandler.Delete)

	movementHandler := NewMovementHandler(deps.RecordMovement, deps.History, deps.ProductUC)
	pages.Get("/movements", movementHandler.List)
	pages.Get("/movements/new", write, movementHandler.NewForm)
	pages.Post("/movements", write, movementHandler.Create)
}
