package stock

import (
	"context"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de stock y el
// asiento del libro de movimientos se confirmen juntos o no se confirmen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
