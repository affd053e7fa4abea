package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// ApplyMovementUseCase es el motor de transiciones de stock: calcula el nuevo
// stock según el tipo de movimiento, lo valida y aplica de forma atómica la
// actualización del producto más el asiento en el libro de movimientos, con
// bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase construye el motor.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento de stock.
// Para ENTRY/EXIT Quantity es el delta (> 0); para ADJUSTMENT es el stock
// objetivo absoluto (>= 0). Reason es opcional.
type MovementInput struct {
	ProductID string
	Type      string
	Quantity  int
	Reason    string
}

// ApplyMovement ejecuta la transición como unidad atómica: carga el producto
// con bloqueo de fila, calcula el nuevo stock según el tipo, persiste el stock
// y registra el asiento. Devuelve el producto actualizado y el asiento creado.
//
//	ENTRY:      stockAfter = stockBefore + quantity (sin tope superior)
//	EXIT:       falla ErrInsufficientStock si quantity > stockBefore
//	ADJUSTMENT: stockAfter = quantity (objetivo absoluto); el asiento registra
//	            la magnitud del cambio |stockAfter - stockBefore|, no el objetivo
func (uc *ApplyMovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*entity.Product, *entity.StockMovement, error) {
	switch input.Type {
	case entity.MovementTypeENTRY, entity.MovementTypeEXIT:
		if input.Quantity <= 0 {
			return nil, nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity < 0 {
			return nil, nil, domain.ErrInvalidQuantity
		}
	default:
		return nil, nil, domain.ErrInvalidMovementKind
	}

	var (
		product  *entity.Product
		movement *entity.StockMovement
	)
	err := uc.txRunner.Run(ctx, func(
		_ repository.CategoryRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Bloquea la fila del producto para serializar transiciones concurrentes
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		stockBefore := p.CurrentStock
		var stockAfter, quantity int
		switch input.Type {
		case entity.MovementTypeENTRY:
			stockAfter = stockBefore + input.Quantity
			quantity = input.Quantity
		case entity.MovementTypeEXIT:
			if input.Quantity > stockBefore {
				return domain.ErrInsufficientStock
			}
			stockAfter = stockBefore - input.Quantity
			quantity = input.Quantity
		case entity.MovementTypeADJUSTMENT:
			stockAfter = input.Quantity
			quantity = stockAfter - stockBefore
			if quantity < 0 {
				quantity = -quantity
			}
		}

		now := time.Now()
		if err := productRepo.UpdateStock(p.ID, stockAfter, now); err != nil {
			return err
		}
		p.CurrentStock = stockAfter
		p.UpdatedAt = now

		m := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   p.ID,
			ProductName: p.Name,
			Type:        input.Type,
			Quantity:    quantity,
			StockBefore: stockBefore,
			StockAfter:  stockAfter,
			Reason:      input.Reason,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(m); err != nil {
			return err
		}

		product, movement = p, m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}
