package repository

import (
	"time"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Es append-only: no existen Update ni Delete. Create lo invoca
// únicamente el motor de movimientos, nunca un caller externo.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// ListAll devuelve una página global ordenada del más reciente al más antiguo.
	ListAll(limit, offset int) ([]*entity.StockMovement, int, error)
	// ListByProduct devuelve el historial completo de un producto, más reciente primero.
	ListByProduct(productID string) ([]*entity.StockMovement, error)
	ListByDateRange(from, to time.Time) ([]*entity.StockMovement, error)
}
