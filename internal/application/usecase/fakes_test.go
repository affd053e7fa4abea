package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por los fakes
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	categories map[string]*entity.Category
	products   map[string]*entity.Product
	movements  []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[string]*entity.Category),
		products:   make(map[string]*entity.Product),
	}
}

// memTxRunner sin transacción real: los fakes operan sobre el mismo almacén.
type memTxRunner struct {
	s *memStore
}

func (r memTxRunner) Run(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(memCategoryRepo{s: r.s}, memProductRepo{s: r.s}, memMovementRepo{s: r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	s *memStore
}

func (r memCategoryRepo) Create(category *entity.Category) error {
	// Imita el índice único sobre lower(name)
	for _, c := range r.s.categories {
		if strings.EqualFold(c.Name, category.Name) {
			return domain.ErrDuplicateName
		}
	}
	cp := *category
	r.s.categories[category.ID] = &cp
	return nil
}

func (r memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memCategoryRepo) Update(category *entity.Category) error {
	for _, c := range r.s.categories {
		if c.ID != category.ID && strings.EqualFold(c.Name, category.Name) {
			return domain.ErrDuplicateName
		}
	}
	cp := *category
	r.s.categories[category.ID] = &cp
	return nil
}

func (r memCategoryRepo) List(limit, offset int, sortBy string) ([]*entity.Category, int, error) {
	all := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return pageOf(all, limit, offset), len(all), nil
}

func (r memCategoryRepo) Delete(id string) error {
	delete(r.s.categories, id)
	return nil
}

func (r memCategoryRepo) Count() (int64, error) {
	return int64(len(r.s.categories)), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	s *memStore
}

func (r memProductRepo) Create(product *entity.Product) error {
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if c, ok := r.s.categories[cp.CategoryID]; ok {
		cp.CategoryName = c.Name
	}
	return &cp, nil
}

func (r memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r memProductRepo) Update(product *entity.Product) error {
	stored := r.s.products[product.ID]
	cp := *product
	cp.CurrentStock = stored.CurrentStock // el stock solo cambia vía UpdateStock
	r.s.products[product.ID] = &cp
	return nil
}

func (r memProductRepo) UpdateStock(productID string, stockValue int, updatedAt time.Time) error {
	r.s.products[productID].CurrentStock = stockValue
	r.s.products[productID].UpdatedAt = updatedAt
	return nil
}

func (r memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

func (r memProductRepo) List(limit, offset int, sortBy, sortDir string) ([]*entity.Product, int, error) {
	all := r.allSorted()
	return pageOf(all, limit, offset), len(all), nil
}

func (r memProductRepo) Search(text string, limit, offset int) ([]*entity.Product, int, error) {
	needle := strings.ToLower(text)
	var matched []*entity.Product
	for _, p := range r.allSorted() {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matched = append(matched, p)
		}
	}
	return pageOf(matched, limit, offset), len(matched), nil
}

func (r memProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, int, error) {
	var matched []*entity.Product
	for _, p := range r.allSorted() {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return pageOf(matched, limit, offset), len(matched), nil
}

func (r memProductRepo) ListLowStock() ([]*entity.Product, error) {
	var matched []*entity.Product
	for _, p := range r.allSorted() {
		if p.CurrentStock <= p.MinStock {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r memProductRepo) Count() (int64, error) {
	return int64(len(r.s.products)), nil
}

func (r memProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r memProductRepo) CountLowStock() (int64, error) {
	var n int64
	for _, p := range r.s.products {
		if p.CurrentStock <= p.MinStock {
			n++
		}
	}
	return n, nil
}

func (r memProductRepo) TotalInventoryValue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.s.products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.CurrentStock))))
	}
	return total, nil
}

func (r memProductRepo) allSorted() []*entity.Product {
	all := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		if c, ok := r.s.categories[cp.CategoryID]; ok {
			cp.CategoryName = c.Name
		}
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// ──────────────────────────────────────────────────────────────────────────────
// StockMovementRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memMovementRepo struct {
	s *memStore
}

func (r memMovementRepo) Create(movement *entity.StockMovement) error {
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memMovementRepo) ListAll(limit, offset int) ([]*entity.StockMovement, int, error) {
	all := r.newestFirst()
	return pageOf(all, limit, offset), len(all), nil
}

func (r memMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var matched []*entity.StockMovement
	for _, m := range r.newestFirst() {
		if m.ProductID == productID {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r memMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.StockMovement, error) {
	var matched []*entity.StockMovement
	for _, m := range r.newestFirst() {
		if !m.CreatedAt.Before(from) && !m.CreatedAt.After(to) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r memMovementRepo) newestFirst() []*entity.StockMovement {
	all := make([]*entity.StockMovement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		cp := *m
		all = append(all, &cp)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all
}

func pageOf[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
