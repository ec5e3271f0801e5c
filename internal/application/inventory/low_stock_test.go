package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/domain/entity"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// stubProductRepo solo implementa ListLowStock; el resto no se usa en el reporte.
type stubProductRepo struct {
	lowStock []*entity.Product
}

func (s *stubProductRepo) ListLowStock() ([]*entity.Product, error) { return s.lowStock, nil }

func (s *stubProductRepo) Create(*entity.Product) error                { return errors.New("no usado") }
func (s *stubProductRepo) GetByID(string) (*entity.Product, error)    { return nil, errors.New("no usado") }
func (s *stubProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, errors.New("no usado") }
func (s *stubProductRepo) GetForUpdate(string) (*entity.Product, error) {
	return nil, errors.New("no usado")
}
func (s *stubProductRepo) Update(*entity.Product) error            { return errors.New("no usado") }
func (s *stubProductRepo) UpdateStock(string, int64) error         { return errors.New("no usado") }
func (s *stubProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, errors.New("no usado")
}
func (s *stubProductRepo) Delete(string) error { return errors.New("no usado") }

type stubPDFGenerator struct {
	received []dto.LowStockItemDTO
}

func (g *stubPDFGenerator) GenerateLowStockPDF(_ context.Context, items []dto.LowStockItemDTO) ([]byte, error) {
	g.received = items
	return []byte("%PDF-1.4 stub"), nil
}

func TestLowStockReport_CalculaFaltante(t *testing.T) {
	repo := &stubProductRepo{lowStock: []*entity.Product{
		{ID: "p1", SKU: "A", Name: "Arroz", Stock: 2, MinStock: 10, Price: decimal.NewFromInt(4)},
		{ID: "p2", SKU: "B", Name: "Azúcar", Stock: 5, MinStock: 5, Price: decimal.NewFromInt(3)},
	}}
	uc := inventory.NewLowStockUseCase(repo, &stubPDFGenerator{})

	report, err := uc.Report()
	require.NoError(t, err)

	require.Equal(t, 2, report.Total)
	assert.Equal(t, int64(8), report.Items[0].Shortage, "faltante = mínimo - stock")
	assert.Equal(t, int64(0), report.Items[1].Shortage, "stock igual al mínimo no tiene faltante")
}

func TestLowStockReport_SinProductos(t *testing.T) {
	uc := inventory.NewLowStockUseCase(&stubProductRepo{}, &stubPDFGenerator{})

	report, err := uc.Report()
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.Items)
}

func TestLowStockReportPDF_PasaItemsAlGenerador(t *testing.T) {
	repo := &stubProductRepo{lowStock: []*entity.Product{
		{ID: "p1", SKU: "A", Name: "Arroz", Stock: 0, MinStock: 4, Price: decimal.NewFromInt(4)},
	}}
	gen := &stubPDFGenerator{}
	uc := inventory.NewLowStockUseCase(repo, gen)

	pdf, err := uc.ReportPDF(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	require.Len(t, gen.received, 1)
	assert.Equal(t, int64(4), gen.received[0].Shortage)
}
