package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// DashboardHandler página de inicio: resumen del inventario.
type DashboardHandler struct {
	productUC *usecase.ProductUseCase
	lowStock  *inventory.LowStockUseCase
	history   *inventory.MovementHistoryUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(
	productUC *usecase.ProductUseCase,
	lowStock *inventory.LowStockUseCase,
	history *inventory.MovementHistoryUseCase,
) *DashboardHandler {
	return &DashboardHandler{productUC: productUC, lowStock: lowStock, history: history}
}

// Index muestra productos bajo umbral y los últimos movimientos.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	report, err := h.lowStock.Report()
	if err != nil {
		return renderError(c, err)
	}
	active := true
	products, err := h.productUC.List(repository.ProductFilter{Active: &active, Limit: 100})
	if err != nil {
		return renderError(c, err)
	}
	recent, err := h.history.List("", "", 10, 0)
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("dashboard", fiber.Map{
		"Title":           "Inventario",
		"User":            currentUser(c),
		"ActiveProducts":  len(products.Items),
		"LowStock":        report,
		"RecentMovements": recent.Items,
	}, "layouts/main")
}

func renderError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
		"Title":   "Error",
		"Message": err.Error(),
		"User":    currentUser(c),
	}, "layouts/main")
}
