package dto

import (
	"time"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

// ApplyMovementRequest body para POST /api/products/:id/stock.
// Para ENTRY/EXIT quantity es el delta (> 0); para ADJUSTMENT es el stock
// objetivo absoluto (>= 0).
type ApplyMovementRequest struct {
	Type     string `json:"type" validate:"required"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason" validate:"max=300"`
}

// StockMovementResponse salida de un asiento del libro de movimientos.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse página global de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// ApplyMovementResponse resultado del motor: producto actualizado + asiento creado.
type ApplyMovementResponse struct {
	Product  ProductResponse       `json:"product"`
	Movement StockMovementResponse `json:"movement"`
}

// FromMovement convierte la entidad a DTO de respuesta.
func FromMovement(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	}
}
