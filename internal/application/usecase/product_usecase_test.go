package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/entity"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.GetByID(id)
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	existing, ok := f.byID[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *p
	// Update nunca escribe el contador: se preserva el valor persistido.
	cp.Stock = existing.Stock
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(productID string, stock int64) error {
	p, ok := f.byID[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (f *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SupplierID != "" && p.SupplierID != filter.SupplierID {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		if filter.Search != "" {
			s := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) && !strings.Contains(strings.ToLower(p.SKU), s) {
				continue
			}
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if p.Active && p.BelowMinStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeSupplierRepo repositorio de proveedores en memoria.
type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byID: make(map[string]*entity.Supplier)}
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error {
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if s, ok := f.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Update(s *entity.Supplier) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSupplierRepo) List(string, int, int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Delete(id string) error {
	delete(f.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type productFixture struct {
	uc         *usecase.ProductUseCase
	products   *fakeProductRepo
	categoryID string
	supplierID string
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()
	categories := newFakeCategoryRepo()
	suppliers := newFakeSupplierRepo()
	products := newFakeProductRepo()

	category := &entity.Category{ID: "cat-1", Name: "Bebidas"}
	require.NoError(t, categories.Create(category))
	supplier := &entity.Supplier{ID: "sup-1", Name: "Distribuidora Norte", Active: true}
	require.NoError(t, suppliers.Create(supplier))

	return &productFixture{
		uc:         usecase.NewProductUseCase(products, categories, suppliers),
		products:   products,
		categoryID: category.ID,
		supplierID: supplier.ID,
	}
}

func (fx *productFixture) createRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:        "SKU-001",
		Name:       "Café molido 500g",
		CategoryID: fx.categoryID,
		SupplierID: fx.supplierID,
		Price:      decimal.NewFromFloat(12.50),
		MinStock:   3,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_NaceConStockCero(t *testing.T) {
	fx := newProductFixture(t)

	out, err := fx.uc.Create(fx.createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.Stock, "todo producto nace con stock 0")
	assert.Equal(t, int64(3), out.MinStock)
	assert.True(t, out.Active)
}

func TestProductCreate_SKUDuplicado_Rechazado(t *testing.T) {
	fx := newProductFixture(t)

	_, err := fx.uc.Create(fx.createRequest())
	require.NoError(t, err)

	req := fx.createRequest()
	req.Name = "Otro producto"
	_, err = fx.uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo_Rechazado(t *testing.T) {
	fx := newProductFixture(t)

	req := fx.createRequest()
	req.Price = decimal.NewFromInt(-1)
	_, err := fx.uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_StockMinimoNegativo_Rechazado(t *testing.T) {
	fx := newProductFixture(t)

	req := fx.createRequest()
	req.MinStock = -5
	_, err := fx.uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaInexistente_NotFound(t *testing.T) {
	fx := newProductFixture(t)

	req := fx.createRequest()
	req.CategoryID = "cat-que-no-existe"
	_, err := fx.uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ProveedorInexistente_NotFound(t *testing.T) {
	fx := newProductFixture(t)

	req := fx.createRequest()
	req.SupplierID = "sup-que-no-existe"
	_, err := fx.uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_NoTocaStockNiSKU(t *testing.T) {
	fx := newProductFixture(t)

	created, err := fx.uc.Create(fx.createRequest())
	require.NoError(t, err)

	// Simula stock acumulado por movimientos.
	require.NoError(t, fx.products.UpdateStock(created.ID, 42))

	name := "Café molido premium 500g"
	price := decimal.NewFromFloat(15.00)
	out, err := fx.uc.Update(created.ID, dto.UpdateProductRequest{Name: &name, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Café molido premium 500g", out.Name)
	assert.Equal(t, "SKU-001", out.SKU, "el SKU no cambia en updates")
	persisted, err := fx.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), persisted.Stock, "el update no debe tocar el contador de stock")
}

func TestProductUpdate_PrecioNegativo_Rechazado(t *testing.T) {
	fx := newProductFixture(t)

	created, err := fx.uc.Create(fx.createRequest())
	require.NoError(t, err)

	price := decimal.NewFromInt(-10)
	_, err = fx.uc.Update(created.ID, dto.UpdateProductRequest{Price: &price})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductList_FiltraPorCategoria(t *testing.T) {
	fx := newProductFixture(t)

	_, err := fx.uc.Create(fx.createRequest())
	require.NoError(t, err)

	out, err := fx.uc.List(repository.ProductFilter{CategoryID: fx.categoryID, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)

	out, err = fx.uc.List(repository.ProductFilter{CategoryID: "otra", Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
