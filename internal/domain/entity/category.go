package entity

import "time"

// Category representa una categoría de productos. Name es único y no puede
// estar vacío; la categoría no puede eliminarse mientras existan productos
// que la referencien (protect-on-delete en la capa de persistencia).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
