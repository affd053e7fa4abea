package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/stock"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. El nombre es único sin
// distinguir mayúsculas/minúsculas y la eliminación se bloquea mientras existan
// productos que la referencien.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
	txRunner    stock.TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	repo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	txRunner stock.TxRunner,
) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo, txRunner: txRunner}
}

// Create crea una categoría nueva. Falla con ErrDuplicateName si ya existe una
// con el mismo nombre (ignorando mayúsculas).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateName
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// El índice único sobre lower(name) cubre la carrera entre el chequeo y el insert
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	out := dto.FromCategory(category, 0)
	return &out, nil
}

// Update renombra/actualiza una categoría. El chequeo de duplicado excluye a la
// propia categoría; refresca la fecha de actualización.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicateName
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	total, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	out := dto.FromCategory(category, int(total))
	return &out, nil
}

// Delete elimina una categoría sin productos asociados. El conteo de
// dependientes y el DELETE corren en la misma transacción para no borrar una
// categoría que un create de producto concurrente está por referenciar.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
	) error {
		category, err := categoryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		total, err := productRepo.CountByCategory(id)
		if err != nil {
			return err
		}
		if total > 0 {
			return domain.ErrHasDependents
		}
		return categoryRepo.Delete(id)
	})
}

// GetByID obtiene una categoría con el conteo de productos que la referencian.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	total, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	out := dto.FromCategory(category, int(total))
	return &out, nil
}

// List lista categorías paginadas, ordenadas ascendente por sortBy (por defecto name).
func (uc *CategoryUseCase) List(page dto.PageRequest, sortBy string) (*dto.CategoryListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(page.Size, page.Offset(), sortBy)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		count, err := uc.productRepo.CountByCategory(c.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.FromCategory(c, int(count)))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}
