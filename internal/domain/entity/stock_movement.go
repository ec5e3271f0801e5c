package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType reporta si s es un tipo de movimiento conocido.
func ValidMovementType(s string) bool {
	return s == MovementTypeIN || s == MovementTypeOUT
}

// StockMovement representa un movimiento de stock (entrada o salida).
//
// Los movimientos son append-only: nunca se actualizan ni se eliminan después
// de creados. Las correcciones se hacen con movimientos compensatorios. Si el
// producto se elimina, sus movimientos caen en cascada con él.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // siempre > 0; el signo lo da Type
	Reason    string // motivo, opcional
	CreatedBy string // UserID que registró el movimiento
	CreatedAt time.Time
}
