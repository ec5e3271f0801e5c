package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/entity"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Es el único camino autorizado para escribir Product.Stock: tanto la API REST
// como los formularios HTML entran por aquí, de modo que el contador y el
// historial de movimientos nunca divergen.
type RecordMovementUseCase struct {
	txRunner TxRunner
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner) *RecordMovementUseCase {
	return &RecordMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento de stock.
// CreatedBy es el principal autenticado, pasado explícitamente: no hay
// contexto ambiente de "usuario actual".
type MovementInput struct {
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // debe ser > 0
	Reason    string
	CreatedBy string
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	MovementID string
	NewStock   int64
}

// Record valida la entrada, bloquea la fila del producto y aplica el
// movimiento: actualiza el contador de stock y persiste el registro en la
// misma transacción.
//
// Precondiciones, en orden: cantidad > 0 (ErrInvalidQuantity); producto
// existente (ErrNotFound); para OUT, stock - cantidad >= 0 contra la fila
// bloqueada (ErrInsufficientStock). Cualquier fallo deja el estado intacto.
func (uc *RecordMovementUseCase) Record(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: la verificación de stock y la
		// escritura ocurren contra un snapshot consistente, dos OUT
		// concurrentes no pueden pasar ambos el chequeo.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newStock := product.Stock + input.Quantity
		if input.Type == entity.MovementTypeOUT {
			newStock = product.Stock - input.Quantity
			if newStock < 0 {
				return domain.ErrInsufficientStock
			}
		}

		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    input.Reason,
			CreatedBy: input.CreatedBy,
			CreatedAt: time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = MovementResult{MovementID: mov.ID, NewStock: newStock}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
