package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// selectMovement proyección con nombre de producto denormalizado. LEFT JOIN:
// los asientos sobreviven a la eliminación del producto (referencia colgante).
const selectMovement = `
	SELECT m.id, m.product_id, COALESCE(p.name, ''), m.type, m.quantity,
	       m.stock_before, m.stock_after, m.reason, m.created_at
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id`

// StockMovementRepo implementación append-only del libro de movimientos sobre
// PostgreSQL (usable con pool o tx). No expone UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un asiento del libro de movimientos.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, stock_before, stock_after, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity,
		movement.StockBefore, movement.StockAfter, reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	row := r.q.QueryRow(context.Background(), selectMovement+` WHERE m.id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListAll página global de asientos, del más reciente al más antiguo.
func (r *StockMovementRepo) ListAll(limit, offset int) ([]*entity.StockMovement, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stock_movements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}
	query := selectMovement + ` ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`
	list, err := r.queryMovements(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByProduct historial completo de un producto, más reciente primero.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	query := selectMovement + ` WHERE m.product_id = $1 ORDER BY m.created_at DESC`
	return r.queryMovements(query, productID)
}

// ListByDateRange asientos dentro del rango [from, to], más recientes primero.
func (r *StockMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.StockMovement, error) {
	query := selectMovement + ` WHERE m.created_at BETWEEN $1 AND $2 ORDER BY m.created_at DESC`
	return r.queryMovements(query, from, to)
}

func (r *StockMovementRepo) queryMovements(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var reason *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
		&m.StockBefore, &m.StockAfter, &reason, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		m.Reason = *reason
	}
	return &m, nil
}
