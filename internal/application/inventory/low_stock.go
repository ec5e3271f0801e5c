package inventory

import (
	"context"

	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// LowStockUseCase reporte de productos en o por debajo de su umbral de
// reposición (stock_minimo), en JSON o como PDF descargable.
type LowStockUseCase struct {
	productRepo  repository.ProductRepository
	pdfGenerator ReportPDFGenerator
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(productRepo repository.ProductRepository, pdfGenerator ReportPDFGenerator) *LowStockUseCase {
	return &LowStockUseCase{productRepo: productRepo, pdfGenerator: pdfGenerator}
}

// Report devuelve los productos activos bajo el umbral, con el faltante sugerido.
func (uc *LowStockUseCase) Report() (*dto.LowStockReportResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItemDTO, 0, len(products))
	for _, p := range products {
		shortage := p.MinStock - p.Stock
		if shortage < 0 {
			shortage = 0
		}
		items = append(items, dto.LowStockItemDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
			Shortage:  shortage,
			Price:     p.Price,
		})
	}
	return &dto.LowStockReportResponse{Total: len(items), Items: items}, nil
}

// ReportPDF genera el mismo reporte como documento PDF.
func (uc *LowStockUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.Report()
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateLowStockPDF(ctx, report.Items)
}
