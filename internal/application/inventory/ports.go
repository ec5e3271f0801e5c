package inventory

import (
	"context"

	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// o se aplican el UPDATE del contador y el INSERT del movimiento juntos, o
// ninguno de los dos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReportPDFGenerator genera la representación PDF del reporte de stock bajo.
type ReportPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, items []dto.LowStockItemDTO) ([]byte, error)
}
