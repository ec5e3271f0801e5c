package repository

import "github.com/lindakrystal/inventario/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID string
	SupplierID string
	Active     *bool
	Search     string // busca en nombre, sku y descripción
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Stock no es editable por Create/Update: solo UpdateStock lo escribe, y
// únicamente desde el motor de movimientos dentro de su transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe el contador denormalizado. Uso exclusivo del motor de movimientos.
	UpdateStock(productID string, stock int64) error
	List(filter ProductFilter) ([]*entity.Product, error)
	// ListLowStock lista productos activos con stock en o por debajo del umbral de reposición.
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
