package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/stock"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y consultas para productos. El stock actual
// nunca se modifica aquí: solo fluye por el motor de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	txRunner     stock.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	txRunner stock.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// Create crea un producto. La categoría debe resolver (ErrCategoryNotFound) y
// el stock mínimo aplica el valor por defecto si no se indica. Si el stock
// inicial es mayor a cero se registra exactamente un movimiento ENTRY sintético
// (0 → stock inicial, motivo "Stock inicial") en la misma transacción, de modo
// que el saldo del libro siempre arranca desde cero sin huecos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.InitialStock < 0 || (in.MinStock != nil && *in.MinStock < 0) {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		minStock = *in.MinStock
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CurrentStock: in.InitialStock,
		MinStock:     minStock,
		CategoryID:   in.CategoryID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		category, err := categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		product.CategoryName = category.Name
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.InitialStock > 0 {
			movement := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				ProductName: product.Name,
				Type:        entity.MovementTypeENTRY,
				Quantity:    in.InitialStock,
				StockBefore: 0,
				StockAfter:  in.InitialStock,
				Reason:      entity.InitialStockReason,
				CreatedAt:   now,
			}
			return movementRepo.Create(movement)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Update reemplaza nombre/descripción/precio/mínimo/categoría. No toca el stock
// actual; refresca la fecha de actualización.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !in.Price.GreaterThan(decimal.Zero) || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.MinStock = in.MinStock
	product.CategoryID = in.CategoryID
	product.CategoryName = category.Name
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina un producto. Sus asientos históricos se conservan con la
// referencia colgante, como rastro de auditoría.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// GetByID obtiene un producto con nombre de categoría denormalizado y la
// bandera de bajo stock derivada.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista productos paginados con orden configurable.
func (uc *ProductUseCase) List(page dto.PageRequest, sortBy, sortDir string) (*dto.ProductListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.List(page.Size, page.Offset(), sortBy, sortDir)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, page, total), nil
}

// Search busca por substring en nombre o descripción (sin distinguir
// mayúsculas). Con query vacío se comporta como List.
func (uc *ProductUseCase) Search(query string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	if query == "" {
		return uc.List(page, "", "")
	}
	list, total, err := uc.repo.Search(query, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, page, total), nil
}

// ListByCategory lista productos de una categoría.
func (uc *ProductUseCase) ListByCategory(categoryID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.Normalize()
	list, total, err := uc.repo.ListByCategory(categoryID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list, page, total), nil
}

// ListLowStock devuelve todos los productos con stock actual <= stock mínimo.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}

func (uc *ProductUseCase) toListResponse(list []*entity.Product, page dto.PageRequest, total int) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}
}
