package repository

import "github.com/lindakrystal/inventario/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(search string, limit, offset int) ([]*entity.Supplier, error)
	// Delete retorna domain.ErrProtected si existen productos que referencian al proveedor.
	Delete(id string) error
}
