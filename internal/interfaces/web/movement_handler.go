package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// MovementHandler páginas de movimientos: historial y formulario de registro.
// El formulario pasa por el mismo caso de uso transaccional que la API, así
// las páginas no pueden dejar el stock inconsistente.
type MovementHandler struct {
	record    *inventory.RecordMovementUseCase
	history   *inventory.MovementHistoryUseCase
	productUC *usecase.ProductUseCase
}

// NewMovementHandler construye el handler web de movimientos.
func NewMovementHandler(
	record *inventory.RecordMovementUseCase,
	history *inventory.MovementHistoryUseCase,
	productUC *usecase.ProductUseCase,
) *MovementHandler {
	return &MovementHandler{record: record, history: history, productUC: productUC}
}

// List muestra el historial, filtrable por producto y tipo.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	movType := c.Query("type")
	out, err := h.history.List(productID, movType, 100, 0)
	if err != nil {
		return renderError(c, err)
	}
	products, err := h.productUC.List(repository.ProductFilter{Limit: 100})
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("movements/list", fiber.Map{
		"Title":     "Movimientos",
		"User":      currentUser(c),
		"Movements": out.Items,
		"Products":  products.Items,
		"ProductID": productID,
		"Type":      movType,
		"Error":     c.Query("error"),
	}, "layouts/main")
}

// NewForm muestra el formulario de registro de movimiento.
func (h *MovementHandler) NewForm(c *fiber.Ctx) error {
	products, err := h.productUC.List(repository.ProductFilter{Limit: 100})
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("movements/form", fiber.Map{
		"Title":     "Registrar movimiento",
		"User":      currentUser(c),
		"Products":  products.Items,
		"ProductID": c.Query("product_id"),
	}, "layouts/main")
}

// Create procesa el formulario.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	quantity, _ := strconv.ParseInt(c.FormValue("quantity", "0"), 10, 64)
	_, err := h.record.Record(c.Context(), inventory.MovementInput{
		ProductID: c.FormValue("product_id"),
		Type:      c.FormValue("type"),
		Quantity:  quantity,
		Reason:    c.FormValue("reason"),
		CreatedBy: currentUser(c).ID,
	})
	if err != nil {
		return c.Redirect("/movements?error=" + movementErrorMessage(err))
	}
	return c.Redirect("/movements")
}

func movementErrorMessage(err error) string {
	switch err {
	case domain.ErrInvalidQuantity:
		return "La+cantidad+debe+ser+mayor+que+cero"
	case domain.ErrInvalidInput:
		return "Producto+y+tipo+son+requeridos"
	case domain.ErrNotFound:
		return "Producto+no+encontrado"
	case domain.ErrInsufficientStock:
		return "Stock+insuficiente+para+la+salida"
	default:
		return "Error+interno"
	}
}
