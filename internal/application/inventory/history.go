package inventory

import (
	"github.com/lindakrystal/inventario/internal/application/dto"
	"github.com/lindakrystal/inventario/internal/domain/entity"
	"github.com/lindakrystal/inventario/internal/domain/repository"
)

// MovementHistoryUseCase consultas de solo lectura sobre el historial de
// movimientos. No hay Update ni Delete: los movimientos son inmutables y las
// correcciones se hacen con movimientos compensatorios.
type MovementHistoryUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewMovementHistoryUseCase construye el caso de uso.
func NewMovementHistoryUseCase(movRepo repository.StockMovementRepository) *MovementHistoryUseCase {
	return &MovementHistoryUseCase{movRepo: movRepo}
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementHistoryUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, nil
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos, opcionalmente filtrados por producto y tipo,
// ordenados del más reciente al más antiguo.
func (uc *MovementHistoryUseCase) List(productID, movType string, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List(repository.MovementFilter{
		ProductID: productID,
		Type:      movType,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
