package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// El stock solo se modifica vía UpdateStock, invocado por el motor de
// movimientos dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int, updatedAt time.Time) error
	Delete(id string) error
	List(limit, offset int, sortBy, sortDir string) ([]*entity.Product, int, error)
	// Search busca por substring en nombre o descripción, sin distinguir mayúsculas.
	Search(text string, limit, offset int) ([]*entity.Product, int, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, int, error)
	// ListLowStock devuelve todos los productos con stock actual <= stock mínimo.
	ListLowStock() ([]*entity.Product, error)
	Count() (int64, error)
	CountByCategory(categoryID string) (int64, error)
	CountLowStock() (int64, error)
	// TotalInventoryValue devuelve SUM(price * current_stock); cero si no hay productos.
	TotalInventoryValue() (decimal.Decimal, error)
}
