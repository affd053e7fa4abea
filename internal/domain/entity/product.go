package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinStock stock mínimo por defecto cuando no se indica al crear.
const DefaultMinStock = 5

// Product representa un producto del inventario.
// CurrentStock nunca es negativo y solo cambia vía el motor de movimientos;
// CategoryID siempre referencia una categoría existente.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal // precio unitario, > 0
	CurrentStock int
	MinStock     int
	CategoryID   string
	CategoryName string // denormalizado en lectura (JOIN con categories)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el stock actual está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}
