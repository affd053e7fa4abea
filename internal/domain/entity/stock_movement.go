package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeENTRY      = "ENTRY"      // entrada
	MovementTypeEXIT       = "EXIT"       // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste a un valor absoluto
)

// InitialStockReason motivo del movimiento sintético que registra el stock inicial.
const InitialStockReason = "Stock inicial"

// StockMovement representa un asiento inmutable del libro de movimientos.
// Quantity es siempre la magnitud del cambio (en ADJUSTMENT se normaliza a
// |StockAfter - StockBefore|) y StockAfter - StockBefore es consistente con el
// tipo. Los asientos nunca se modifican ni se borran una vez creados.
type StockMovement struct {
	ID          string
	ProductID   string
	ProductName string // denormalizado en lectura; vacío si el producto fue eliminado
	Type        string // ENTRY, EXIT, ADJUSTMENT
	Quantity    int
	StockBefore int
	StockAfter  int
	Reason      string // opcional, máx. 300 caracteres
	CreatedAt   time.Time
}
