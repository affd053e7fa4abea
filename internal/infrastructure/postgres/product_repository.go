package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// selectProduct proyección estándar con nombre de categoría denormalizado.
const selectProduct = `
	SELECT p.id, p.name, p.description, p.price, p.current_stock, p.min_stock,
	       p.category_id, c.name, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// Campos ordenables permitidos para el listado de productos.
var productSortFields = map[string]string{
	"id":            "p.id",
	"name":          "p.name",
	"price":         "p.price",
	"current_stock": "p.current_stock",
	"min_stock":     "p.min_stock",
	"created_at":    "p.created_at",
	"updated_at":    "p.updated_at",
}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, current_stock, min_stock, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.CurrentStock, product.MinStock, product.CategoryID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre de su categoría.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(), selectProduct+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE) para
// serializar transiciones de stock concurrentes sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(), selectProduct+` WHERE p.id = $1 FOR UPDATE OF p`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. No toca current_stock: el stock solo
// cambia vía UpdateStock dentro del motor de movimientos.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, min_stock = $5, category_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.MinStock, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock actualiza solo el stock actual (usado por el motor de movimientos).
// Recibe el timestamp para que la fila persista el mismo instante que el motor
// devuelve y registra en el asiento.
func (r *ProductRepo) UpdateStock(productID string, stock int, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = $3 WHERE id = $1`,
		productID, stock, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Sus movimientos se conservan.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos paginados con orden configurable (por defecto id DESC).
func (r *ProductRepo) List(limit, offset int, sortBy, sortDir string) ([]*entity.Product, int, error) {
	column, ok := productSortFields[sortBy]
	if !ok {
		column = "p.id"
	}
	dir := "DESC"
	if strings.EqualFold(sortDir, "ASC") {
		dir = "ASC"
	}
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	query := fmt.Sprintf(selectProduct+` ORDER BY %s %s LIMIT $1 OFFSET $2`, column, dir)
	list, err := r.queryProducts(query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca por substring en nombre o descripción, sin distinguir mayúsculas,
// ordenado por nombre ascendente.
func (r *ProductRepo) Search(text string, limit, offset int) ([]*entity.Product, int, error) {
	pattern := "%" + text + "%"
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR description ILIKE $1`,
		pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count search products: %w", err)
	}
	query := selectProduct + `
		WHERE p.name ILIKE $1 OR p.description ILIKE $1
		ORDER BY p.name ASC LIMIT $2 OFFSET $3`
	list, err := r.queryProducts(query, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByCategory lista productos de una categoría, paginados.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products by category: %w", err)
	}
	query := selectProduct + ` WHERE p.category_id = $1 ORDER BY p.id DESC LIMIT $2 OFFSET $3`
	list, err := r.queryProducts(query, categoryID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListLowStock devuelve todos los productos con stock actual <= stock mínimo.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := selectProduct + ` WHERE p.current_stock <= p.min_stock ORDER BY p.id`
	return r.queryProducts(query)
}

// Count devuelve el total de productos.
func (r *ProductRepo) Count() (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountByCategory devuelve cuántos productos referencian una categoría.
func (r *ProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return n, nil
}

// CountLowStock devuelve cuántos productos están en o por debajo del mínimo.
func (r *ProductRepo) CountLowStock() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE current_stock <= min_stock`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock products: %w", err)
	}
	return n, nil
}

// TotalInventoryValue devuelve SUM(price * current_stock); COALESCE garantiza
// cero con inventario vacío.
func (r *ProductRepo) TotalInventoryValue() (decimal.Decimal, error) {
	var v decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(price * current_stock), 0) FROM products`,
	).Scan(&v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return v, nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CurrentStock, &p.MinStock,
		&p.CategoryID, &p.CategoryName, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
