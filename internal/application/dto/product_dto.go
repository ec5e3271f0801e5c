package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// El stock inicial siempre es 0: las existencias de apertura se cargan como
// movimientos IN para que el contador y el historial coincidan desde el inicio.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=50"`
	Name        string          `json:"name" validate:"required,min=1,max=150"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	SupplierID  string          `json:"supplier_id" validate:"required,uuid"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int64           `json:"stock_minimo" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=150"`
	Description *string          `json:"description"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	SupplierID  *string          `json:"supplier_id" validate:"omitempty,uuid"`
	Price       *decimal.Decimal `json:"price"`
	MinStock    *int64           `json:"stock_minimo" validate:"omitempty,min=0"`
	Active      *bool            `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  string          `json:"category_id"`
	SupplierID  string          `json:"supplier_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock_actual"`
	MinStock    int64           `json:"stock_minimo"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
