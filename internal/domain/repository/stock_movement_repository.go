package repository

import "github.com/lindakrystal/inventario/internal/domain/entity"

// MovementFilter filtros de listado de movimientos.
type MovementFilter struct {
	ProductID string
	Type      string // IN, OUT o vacío
	Limit     int
	Offset    int
}

// StockMovementRepository define el puerto de persistencia para movimientos de stock (DIP).
// Los movimientos son append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// SumByProduct devuelve la suma con signo (+IN, -OUT) de los movimientos del producto.
	SumByProduct(productID string) (int64, error)
}
