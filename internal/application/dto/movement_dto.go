package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"omitempty,max=255"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterMovementResponse confirma un movimiento aplicado: id del movimiento
// y el stock resultante del producto.
type RegisterMovementResponse struct {
	MovementID string `json:"movement_id"`
	NewStock   int64  `json:"new_stock_actual"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// RecomputeStockResponse resultado de una reconciliación de stock.
type RecomputeStockResponse struct {
	ProductID     string `json:"product_id"`
	PreviousStock int64  `json:"previous_stock"`
	Stock         int64  `json:"stock_actual"`
}
