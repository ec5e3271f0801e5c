package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain"
)

// SupplierHandler páginas CRUD de proveedores.
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler web de proveedores.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// List muestra el listado con buscador.
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	out, err := h.uc.List(search, 100, 0)
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("suppliers/list", fiber.Map{
		"Title":     "Proveedores",
		"User":      currentUser(c),
		"Suppliers": out.Items,
		"Search":    search,
		"Error":     c.Query("error"),
	}, "layouts/main")
}

// NewForm muestra el formulario de alta.
func (h *SupplierHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("suppliers/form", fiber.Map{
		"Title": "Nuevo proveedor",
		"User":  currentUser(c),
	}, "layouts/main")
}

// Create procesa el alta.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	_, err := h.uc.Create(dto.CreateSupplierRequest{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Address: c.FormValue("address"),
	})
	if err != nil {
		return c.Redirect("/suppliers?error=" + supplierErrorMessage(err))
	}
	return c.Redirect("/suppliers")
}

// EditForm muestra el formulario de edición.
func (h *SupplierHandler) EditForm(c *fiber.Ctx) error {
	supplier, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	if supplier == nil {
		return c.Redirect("/suppliers?error=Proveedor+no+encontrado")
	}
	return c.Render("suppliers/form", fiber.Map{
		"Title":    "Editar proveedor",
		"User":     currentUser(c),
		"Supplier": supplier,
	}, "layouts/main")
}

// Update procesa la edición.
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	phone := c.FormValue("phone")
	address := c.FormValue("address")
	active := c.FormValue("active") == "on"
	_, err := h.uc.Update(c.Params("id"), dto.UpdateSupplierRequest{
		Name:    &name,
		Email:   &email,
		Phone:   &phone,
		Address: &address,
		Active:  &active,
	})
	if err != nil {
		return c.Redirect("/suppliers?error=" + supplierErrorMessage(err))
	}
	return c.Redirect("/suppliers")
}

// Delete elimina un proveedor sin productos asociados.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Redirect("/suppliers?error=" + supplierErrorMessage(err))
	}
	return c.Redirect("/suppliers")
}

func supplierErrorMessage(err error) string {
	switch err {
	case domain.ErrInvalidInput:
		return "Datos+de+proveedor+inválidos"
	case domain.ErrDuplicate:
		return "Ya+existe+un+proveedor+con+ese+nombre"
	case domain.ErrProtected:
		return "El+proveedor+tiene+productos+asociados"
	case domain.ErrNotFound:
		return "Proveedor+no+encontrado"
	default:
		return "Error+interno"
	}
}
