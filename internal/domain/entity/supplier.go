package entity

import "time"

// Supplier representa un proveedor de productos. No puede eliminarse mientras
// existan productos que lo referencien (protect-on-delete).
type Supplier struct {
	ID        string
	Name      string
	Email     string // opcional
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
