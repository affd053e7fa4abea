package usecase

import (
	"time"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// MovementUseCase consultas de solo lectura sobre el libro de movimientos.
// Los asientos se crean únicamente vía el motor de transiciones; aquí no hay
// escrituras.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// ListAll página global de movimientos, del más reciente al más antiguo.
func (uc *MovementUseCase) ListAll(page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.ListAll(page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.FromMovement(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// ListByProduct historial completo de un producto, más reciente primero.
func (uc *MovementUseCase) ListByProduct(productID string) ([]dto.StockMovementResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.FromMovement(m))
	}
	return items, nil
}

// ListByDateRange movimientos dentro del rango [from, to].
func (uc *MovementUseCase) ListByDateRange(from, to time.Time) ([]dto.StockMovementResponse, error) {
	list, err := uc.repo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.FromMovement(m))
	}
	return items, nil
}

// GetByID obtiene un asiento por ID.
func (uc *MovementUseCase) GetByID(id string) (*dto.StockMovementResponse, error) {
	movement, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromMovement(movement)
	return &out, nil
}
