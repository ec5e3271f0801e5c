package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindakrystal/inventario/internal/application/inventory"
	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/entity"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// El fakeTxRunner emula las garantías que da Postgres en producción: el mutex
// serializa las transacciones (equivalente al lock de fila de FOR UPDATE) y
// los cambios se aplican sobre una copia que solo se publica en commit, así un
// error dentro de fn no deja efectos parciales.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

func newMemState(products ...*entity.Product) *memState {
	st := &memState{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		st.products[p.ID] = &cp
	}
	return st
}

func (st *memState) product(id string) *entity.Product {
	st.mu.Lock()
	defer st.mu.Unlock()
	if p, ok := st.products[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (st *memState) movementCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.movements)
}

type txState struct {
	products  map[string]*entity.Product
	movements []*entity.StockMovement
}

type fakeTxRunner struct {
	st *memState
	// failMovementCreate fuerza el error del INSERT del movimiento para
	// verificar que el update de stock no se publica solo.
	failMovementCreate bool
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	tx := &txState{products: make(map[string]*entity.Product, len(r.st.products))}
	for id, p := range r.st.products {
		cp := *p
		tx.products[id] = &cp
	}
	tx.movements = append(tx.movements, r.st.movements...)

	err := fn(
		&fakeMovementRepo{tx: tx, failCreate: r.failMovementCreate},
		&fakeProductRepo{tx: tx},
	)
	if err != nil {
		return err // rollback: el estado publicado no se toca
	}
	r.st.products = tx.products
	r.st.movements = tx.movements
	return nil
}

type fakeProductRepo struct {
	tx *txState
}

func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	if p, ok := f.tx.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) UpdateStock(productID string, stock int64) error {
	p, ok := f.tx.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if stock < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock = stock
	return nil
}

func (f *fakeProductRepo) Create(*entity.Product) error               { return errors.New("no usado") }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error)    { return nil, errors.New("no usado") }
func (f *fakeProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, errors.New("no usado") }
func (f *fakeProductRepo) Update(*entity.Product) error               { return errors.New("no usado") }
func (f *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return nil, errors.New("no usado")
}
func (f *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, errors.New("no usado") }
func (f *fakeProductRepo) Delete(string) error                      { return errors.New("no usado") }

type fakeMovementRepo struct {
	tx         *txState
	failCreate bool
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if f.failCreate {
		return errors.New("insert movimiento falló")
	}
	cp := *m
	f.tx.movements = append(f.tx.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.tx.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.tx.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMovementRepo) SumByProduct(productID string) (int64, error) {
	var sum int64
	for _, m := range f.tx.movements {
		if m.ProductID != productID {
			continue
		}
		if m.Type == entity.MovementTypeIN {
			sum += m.Quantity
		} else {
			sum -= m.Quantity
		}
	}
	return sum, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testProductID = "00000000-0000-0000-0000-0000000000aa"

func productWithStock(stock int64) *entity.Product {
	return &entity.Product{
		ID:    testProductID,
		SKU:   "SKU-001",
		Name:  "Café molido 500g",
		Stock: stock,
	}
}

func newUseCase(st *memState) *inventory.RecordMovementUseCase {
	return inventory.NewRecordMovementUseCase(&fakeTxRunner{st: st})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_EntradaSumaStock(t *testing.T) {
	st := newMemState(productWithStock(0))
	uc := newUseCase(st)

	result, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      entity.MovementTypeIN,
		Quantity:  5,
		Reason:    "compra inicial",
		CreatedBy: "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.NewStock, "IN de 5 sobre stock 0 debe dejar 5")
	assert.NotEmpty(t, result.MovementID)
	assert.Equal(t, int64(5), st.product(testProductID).Stock)
	assert.Equal(t, 1, st.movementCount(), "debe quedar un movimiento en el historial")
}

func TestRecord_SalidaHastaCero(t *testing.T) {
	st := newMemState(productWithStock(10))
	uc := newUseCase(st)

	result, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      entity.MovementTypeOUT,
		Quantity:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.NewStock, "OUT de 10 sobre stock 10 debe dejar exactamente 0")
	assert.Equal(t, int64(0), st.product(testProductID).Stock)
}

func TestRecord_SalidaSinStock_Rechazada(t *testing.T) {
	st := newMemState(productWithStock(0))
	uc := newUseCase(st)

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      entity.MovementTypeOUT,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(0), st.product(testProductID).Stock, "el stock no debe cambiar")
	assert.Equal(t, 0, st.movementCount(), "no debe quedar movimiento registrado")
}

func TestRecord_SalidaSinStock_ReintentosTambienRechazados(t *testing.T) {
	st := newMemState(productWithStock(0))
	uc := newUseCase(st)

	in := inventory.MovementInput{ProductID: testProductID, Type: entity.MovementTypeOUT, Quantity: 3}
	for i := 0; i < 3; i++ {
		_, err := uc.Record(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}
	assert.Equal(t, 0, st.movementCount())
}

func TestRecord_CantidadCero_Rechazada(t *testing.T) {
	st := newMemState(productWithStock(10))
	uc := newUseCase(st)

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      entity.MovementTypeIN,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 0, st.movementCount())
	assert.Equal(t, int64(10), st.product(testProductID).Stock)
}

func TestRecord_CantidadNegativa_Rechazada(t *testing.T) {
	st := newMemState(productWithStock(10))
	uc := newUseCase(st)

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      entity.MovementTypeOUT,
		Quantity:  -4,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRecord_TipoInvalido_Rechazado(t *testing.T) {
	st := newMemState(productWithStock(10))
	uc := newUseCase(st)

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      "TRANSFER",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_ProductoInexistente_NotFound(t *testing.T) {
	st := newMemState()
	uc := newUseCase(st)

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: "00000000-0000-0000-0000-0000000000ff",
		Type:      entity.MovementTypeIN,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecord_FalloAlPersistirMovimiento_NoTocaStock(t *testing.T) {
	st := newMemState(productWithStock(10))
	uc := inventory.NewRecordMovementUseCase(&fakeTxRunner{st: st, failMovementCreate: true})

	_, err := uc.Record(context.Background(), inventory.MovementInput{
		ProductID: testProductID,
		Type:      entity.MovementTypeOUT,
		Quantity:  4,
	})
	require.Error(t, err)

	// Rollback: ni el contador ni el historial deben reflejar nada.
	assert.Equal(t, int64(10), st.product(testProductID).Stock)
	assert.Equal(t, 0, st.movementCount())
}

// Dos OUT concurrentes que individualmente caben pero juntas no: exactamente
// una debe pasar y la otra recibir ErrInsufficientStock.
func TestRecord_SalidasConcurrentes_SoloUnaPasa(t *testing.T) {
	st := newMemState(productWithStock(10))
	uc := newUseCase(st)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Record(context.Background(), inventory.MovementInput{
				ProductID: testProductID,
				Type:      entity.MovementTypeOUT,
				Quantity:  6,
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "exactamente una salida debe aplicarse")
	assert.Equal(t, 1, insufficient, "la otra debe rechazarse por stock insuficiente")
	assert.Equal(t, int64(4), st.product(testProductID).Stock)
	assert.Equal(t, 1, st.movementCount())
}

// Bajo carga, el stock final siempre debe ser consistente con el historial:
// stock nunca negativo y cada OUT aplicado tiene su movimiento.
func TestRecord_ConcurrenciaMasiva_HistorialConsistente(t *testing.T) {
	const initial = 10
	const workers = 25
	st := newMemState(productWithStock(initial))
	uc := newUseCase(st)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Record(context.Background(), inventory.MovementInput{
				ProductID: testProductID,
				Type:      entity.MovementTypeOUT,
				Quantity:  1,
			})
		}()
	}
	wg.Wait()

	final := st.product(testProductID).Stock
	applied := st.movementCount()
	assert.Equal(t, initial, applied, "solo deben aplicarse tantas salidas como stock había")
	assert.Equal(t, int64(0), final)
	assert.Equal(t, int64(initial)-int64(applied), final, "contador e historial deben coincidir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de reconciliación de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRecompute_CoincideConHistorial(t *testing.T) {
	st := newMemState(productWithStock(0))
	record := newUseCase(st)
	ctx := context.Background()

	for _, mv := range []struct {
		typ string
		qty int64
	}{
		{entity.MovementTypeIN, 20},
		{entity.MovementTypeOUT, 5},
		{entity.MovementTypeIN, 3},
	} {
		_, err := record.Record(ctx, inventory.MovementInput{
			ProductID: testProductID, Type: mv.typ, Quantity: mv.qty,
		})
		require.NoError(t, err)
	}

	// Corrupción simulada: alguien escribió el contador fuera del motor.
	st.mu.Lock()
	st.products[testProductID].Stock = 999
	st.mu.Unlock()

	recompute := inventory.NewRecomputeStockUseCase(&fakeTxRunner{st: st})
	result, err := recompute.Recompute(ctx, testProductID)
	require.NoError(t, err)

	assert.Equal(t, int64(999), result.PreviousStock)
	assert.Equal(t, int64(18), result.Stock, "20 - 5 + 3 = 18")
	assert.Equal(t, int64(18), st.product(testProductID).Stock)
}

func TestRecompute_HistorialNegativo_Rechazado(t *testing.T) {
	st := newMemState(productWithStock(0))
	// Historial corrupto inyectado directamente: más salidas que entradas.
	st.movements = append(st.movements, &entity.StockMovement{
		ID: "m1", ProductID: testProductID, Type: entity.MovementTypeOUT, Quantity: 7,
	})

	recompute := inventory.NewRecomputeStockUseCase(&fakeTxRunner{st: st})
	_, err := recompute.Recompute(context.Background(), testProductID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(0), st.product(testProductID).Stock, "no debe escribirse un stock negativo")
}

func TestRecompute_ProductoInexistente_NotFound(t *testing.T) {
	st := newMemState()
	recompute := inventory.NewRecomputeStockUseCase(&fakeTxRunner{st: st})
	_, err := recompute.Recompute(context.Background(), testProductID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
