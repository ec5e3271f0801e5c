package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// ProductHandler páginas CRUD de productos.
type ProductHandler struct {
	uc         *usecase.ProductUseCase
	categoryUC *usecase.CategoryUseCase
	supplierUC *usecase.SupplierUseCase
}

// NewProductHandler construye el handler web de productos.
func NewProductHandler(
	uc *usecase.ProductUseCase,
	categoryUC *usecase.CategoryUseCase,
	supplierUC *usecase.SupplierUseCase,
) *ProductHandler {
	return &ProductHandler{uc: uc, categoryUC: categoryUC, supplierUC: supplierUC}
}

// List muestra el listado con buscador y filtro por categoría.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		CategoryID: c.Query("category_id"),
		Search:     c.Query("search"),
		Limit:      100,
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return renderError(c, err)
	}
	categories, err := h.categoryUC.List("", 100, 0)
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("products/list", fiber.Map{
		"Title":      "Productos",
		"User":       currentUser(c),
		"Products":   out.Items,
		"Categories": categories.Items,
		"Search":     filter.Search,
		"CategoryID": c.Query("category_id"),
		"Error":      c.Query("error"),
	}, "layouts/main")
}

// Detail muestra la ficha de un producto.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	if product == nil {
		return c.Redirect("/products?error=Producto+no+encontrado")
	}
	return c.Render("products/detail", fiber.Map{
		"Title":   product.Name,
		"User":    currentUser(c),
		"Product": product,
	}, "layouts/main")
}

// NewForm muestra el formulario de alta.
func (h *ProductHandler) NewForm(c *fiber.Ctx) error {
	return h.renderForm(c, "Nuevo producto", nil)
}

// Create procesa el alta. El producto nace con stock 0.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	price, err := decimal.NewFromString(c.FormValue("price", "0"))
	if err != nil {
		return c.Redirect("/products?error=Precio+inválido")
	}
	minStock, _ := strconv.ParseInt(c.FormValue("stock_minimo", "0"), 10, 64)
	_, err = h.uc.Create(dto.CreateProductRequest{
		SKU:         c.FormValue("sku"),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("category_id"),
		SupplierID:  c.FormValue("supplier_id"),
		Price:       price,
		MinStock:    minStock,
	})
	if err != nil {
		return c.Redirect("/products?error=" + productErrorMessage(err))
	}
	return c.Redirect("/products")
}

// EditForm muestra el formulario de edición.
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	if product == nil {
		return c.Redirect("/products?error=Producto+no+encontrado")
	}
	return h.renderForm(c, "Editar producto", product)
}

// Update procesa la edición. SKU y stock no se tocan por aquí.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	price, err := decimal.NewFromString(c.FormValue("price", "0"))
	if err != nil {
		return c.Redirect("/products?error=Precio+inválido")
	}
	minStock, _ := strconv.ParseInt(c.FormValue("stock_minimo", "0"), 10, 64)
	name := c.FormValue("name")
	description := c.FormValue("description")
	categoryID := c.FormValue("category_id")
	supplierID := c.FormValue("supplier_id")
	active := c.FormValue("active") == "on"
	_, err = h.uc.Update(c.Params("id"), dto.UpdateProductRequest{
		Name:        &name,
		Description: &description,
		CategoryID:  &categoryID,
		SupplierID:  &supplierID,
		Price:       &price,
		MinStock:    &minStock,
		Active:      &active,
	})
	if err != nil {
		return c.Redirect("/products?error=" + productErrorMessage(err))
	}
	return c.Redirect("/products")
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Redirect("/products?error=" + productErrorMessage(err))
	}
	return c.Redirect("/products")
}

func (h *ProductHandler) renderForm(c *fiber.Ctx, title string, product *dto.ProductResponse) error {
	categories, err := h.categoryUC.List("", 100, 0)
	if err != nil {
		return renderError(c, err)
	}
	suppliers, err := h.supplierUC.List("", 100, 0)
	if err != nil {
		return renderError(c, err)
	}
	return c.Render("products/form", fiber.Map{
		"Title":      title,
		"User":       currentUser(c),
		"Product":    product,
		"Categories": categories.Items,
		"Suppliers":  suppliers.Items,
	}, "layouts/main")
}

func productErrorMessage(err error) string {
	switch err {
	case domain.ErrInvalidInput:
		return "Datos+de+producto+inválidos"
	case domain.ErrDuplicate:
		return "Ya+existe+un+producto+con+ese+SKU"
	case domain.ErrNotFound:
		return "Categoría+o+proveedor+no+encontrado"
	case domain.ErrProtected:
		return "El+producto+tiene+registros+asociados"
	default:
		return "Error+interno"
	}
}
