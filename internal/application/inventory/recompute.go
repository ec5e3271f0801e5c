package inventory

import (
	"context"

	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// RecomputeStockUseCase reconcilia el contador denormalizado de un producto
// contra su historial de movimientos. Es la válvula de escape si alguna vez
// hubo escrituras fuera del motor de movimientos; en operación normal el
// resultado coincide con el contador.
type RecomputeStockUseCase struct {
	txRunner TxRunner
}

// NewRecomputeStockUseCase construye el caso de uso.
func NewRecomputeStockUseCase(txRunner TxRunner) *RecomputeStockUseCase {
	return &RecomputeStockUseCase{txRunner: txRunner}
}

// RecomputeResult stock antes y después de la reconciliación.
type RecomputeResult struct {
	ProductID     string
	PreviousStock int64
	Stock         int64
}

// Recompute bloquea la fila del producto, suma los movimientos con signo y
// escribe el resultado como nuevo stock. Todo en una transacción para que
// ningún movimiento concurrente se cuele entre la suma y la escritura.
func (uc *RecomputeStockUseCase) Recompute(ctx context.Context, productID string) (*RecomputeResult, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var result RecomputeResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		sum, err := movRepo.SumByProduct(productID)
		if err != nil {
			return err
		}
		if sum < 0 {
			// Historial corrupto: preferimos fallar a escribir un stock negativo.
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(productID, sum); err != nil {
			return err
		}
		result = RecomputeResult{ProductID: productID, PreviousStock: product.Stock, Stock: sum}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
