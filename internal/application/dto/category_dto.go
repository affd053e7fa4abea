package dto

import (
	"time"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"max=200"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (reemplazo completo).
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"max=200"`
}

// CategoryResponse salida de una categoría.
// TotalProducts es el conteo de productos que la referencian, calculado en lectura.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	TotalProducts int       `json:"total_products"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryListResponse página de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// FromCategory convierte la entidad a DTO de respuesta.
func FromCategory(c *entity.Category, totalProducts int) CategoryResponse {
	return CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		TotalProducts: totalProducts,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
