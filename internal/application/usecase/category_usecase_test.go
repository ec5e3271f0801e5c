package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/application/usecase"
	"github.com/lindakrystal/inventario/internal/domain"
	"github.com/lindakrystal/inventario/internal/domain/entity"
)

// fakeCategoryRepo repositorio de categorías en memoria.
type fakeCategoryRepo struct {
	byID map[string]*entity.Category
	// protected simula categorías con productos asociados (FK RESTRICT).
	protected map[string]bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:      make(map[string]*entity.Category),
		protected: make(map[string]bool),
	}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	if _, ok := f.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) List(search string, limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.byID {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	if f.protected[id] {
		return domain.ErrProtected
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestCategoryCreate_OK(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "  Bebidas  ", Description: "Gaseosas y jugos"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Bebidas", out.Name, "el nombre debe guardarse sin espacios alrededor")
	assert.Equal(t, "Gaseosas y jugos", out.Description)
}

func TestCategoryCreate_NombreVacio_Rechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_NombreDuplicado_Rechazado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_NombreDeOtraCategoria_Rechazado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	lacteos, err := uc.Create(dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)

	name := "Bebidas"
	_, err = uc.Update(lacteos.ID, dto.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_MismoNombre_OK(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	name := "Bebidas"
	desc := "actualizada"
	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: &name, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "actualizada", out.Description)
}

func TestCategoryUpdate_Inexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	name := "Bebidas"
	out, err := uc.Update("no-existe", dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCategoryDelete_ConProductos_Protegida(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	repo.protected[created.ID] = true

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrProtected)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "la categoría protegida debe seguir existiendo")
}
