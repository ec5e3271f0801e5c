package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain"
)

// CategoryHandler páginas CRUD de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler web de categorías.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List muestra el listado con buscador.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	out, err := h.uc.List(search, 100, 0)
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("categories/list", fiber.Map{
		"Title":      "Categorías",
		"User":       currentUser(c),
		"Categories": out.Items,
		"Search":     search,
		"Error":      c.Query("error"),
	}, "layouts/main")
}

// NewForm muestra el formulario de alta.
func (h *CategoryHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("categories/form", fiber.Map{
		"Title": "Nueva categoría",
		"User":  currentUser(c),
	}, "layouts/main")
}

// Create procesa el alta.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	_, err := h.uc.Create(dto.CreateCategoryRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		return c.Redirect("/categories?error=" + categoryErrorMessage(err))
	}
	return c.Redirect("/categories")
}

// EditForm muestra el formulario de edición.
func (h *CategoryHandler) EditForm(c *fiber.Ctx) error {
	category, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	if category == nil {
		return c.Redirect("/categories?error=Categoría+no+encontrada")
	}
	return c.Render("categories/form", fiber.Map{
		"Title":    "Editar categoría",
		"User":     currentUser(c),
		"Category": category,
	}, "layouts/main")
}

// Update procesa la edición.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	name := c.FormValue("name")
	description := c.FormValue("description")
	_, err := h.uc.Update(c.Params("id"), dto.UpdateCategoryRequest{
		Name:        &name,
		Description: &description,
	})
	if err != nil {
		return c.Redirect("/categories?error=" + categoryErrorMessage(err))
	}
	return c.Redirect("/categories")
}

// Delete elimina una categoría sin productos asociados.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Redirect("/categories?error=" + categoryErrorMessage(err))
	}
	return c.Redirect("/categories")
}

func categoryErrorMessage(err error) string {
	switch err {
	case domain.ErrInvalidInput:
		return "Nombre+requerido"
	case domain.ErrDuplicate:
		return "Ya+existe+una+categoría+con+ese+nombre"
	case domain.ErrProtected:
		return "La+categoría+tiene+productos+asociados"
	case domain.ErrNotFound:
		return "Categoría+no+encontrada"
	default:
		return "Error+interno"
	}
}
