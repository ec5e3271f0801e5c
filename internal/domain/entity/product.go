package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
//
// Stock es un contador denormalizado: siempre igual a la suma con signo de los
// movimientos del producto desde su creación. Solo el motor de movimientos
// (application/inventory) puede escribirlo; los CRUD de producto nunca lo tocan.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	CategoryID  string
	SupplierID  string
	Price       decimal.Decimal // precio de venta, >= 0
	Stock       int64           // stock_actual, >= 0, solo vía movimientos
	MinStock    int64           // stock_minimo, umbral de reposición, >= 0
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinStock indica si el producto está en o por debajo de su umbral de reposición.
func (p *Product) BelowMinStock() bool {
	return p.Stock <= p.MinStock
}
