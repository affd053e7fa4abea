package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// MinStock nil aplica el valor por defecto (5). InitialStock > 0 genera un
// movimiento ENTRY sintético en la misma transacción.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=3,max=100"`
	Description  string          `json:"description" validate:"max=500"`
	Price        decimal.Decimal `json:"price"`
	InitialStock int             `json:"initial_stock" validate:"min=0"`
	MinStock     *int            `json:"min_stock" validate:"omitempty,min=0"`
	CategoryID   string          `json:"category_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo;
// el stock actual no se toca aquí, solo vía movimientos).
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
	CategoryID  string          `json:"category_id" validate:"required"`
}

// ProductResponse salida de un producto, con nombre de categoría denormalizado
// y la bandera low_stock derivada (no almacenada).
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// FromProduct convierte la entidad a DTO de respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
