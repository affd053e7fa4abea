package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/entity"
)

func newProductUC(s *memStore) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memProductRepo{s: s}, memCategoryRepo{s: s}, memTxRunner{s: s})
}

// seedCategory inserta una categoría directamente en el almacén.
func seedCategory(s *memStore, id, name string) {
	now := time.Now()
	s.categories[id] = &entity.Category{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
}

func TestProductCreate_ConStockInicialRegistraEntry(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "Martillo de carpintero",
		Price:        decimal.RequireFromString("19.90"),
		InitialStock: 20,
		CategoryID:   "cat-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 20, created.CurrentStock)
	assert.Equal(t, "Herramientas", created.CategoryName)

	require.Len(t, s.movements, 1, "debe registrarse exactamente un movimiento sintético")
	m := s.movements[0]
	assert.Equal(t, entity.MovementTypeENTRY, m.Type)
	assert.Equal(t, 0, m.StockBefore, "el saldo del libro arranca desde cero")
	assert.Equal(t, 20, m.StockAfter)
	assert.Equal(t, 20, m.Quantity)
	assert.Equal(t, entity.InitialStockReason, m.Reason)
	assert.Equal(t, created.ID, m.ProductID)
}

func TestProductCreate_SinStockInicialNoRegistraMovimiento(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Destornillador plano",
		Price:      decimal.RequireFromString("4.50"),
		CategoryID: "cat-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, created.CurrentStock)
	assert.Empty(t, s.movements, "con stock inicial cero no debe haber asientos")
}

func TestProductCreate_StockMinimoPorDefecto(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Llave inglesa",
		Price:      decimal.RequireFromString("9.90"),
		CategoryID: "cat-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultMinStock, created.MinStock, "sin min_stock aplica el valor por defecto")

	explicit := 0
	created2, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Llave francesa",
		Price:      decimal.RequireFromString("9.90"),
		MinStock:   &explicit,
		CategoryID: "cat-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, created2.MinStock, "min_stock cero explícito debe respetarse")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc := newProductUC(newMemStore())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Martillo",
		Price:      decimal.RequireFromString("19.90"),
		CategoryID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductCreate_EntradaInvalida(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")

	cases := []dto.CreateProductRequest{
		{Name: "Precio cero", Price: decimal.Zero, CategoryID: "cat-1"},
		{Name: "Precio negativo", Price: decimal.RequireFromString("-1"), CategoryID: "cat-1"},
		{Name: "Stock negativo", Price: decimal.RequireFromString("1"), InitialStock: -1, CategoryID: "cat-1"},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in.Name)
	}
	assert.Empty(t, s.products, "ningún producto debe persistirse")
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "Martillo",
		Price:        decimal.RequireFromString("19.90"),
		InitialStock: 7,
		CategoryID:   "cat-1",
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:       "Martillo de uña",
		Price:      decimal.RequireFromString("24.90"),
		MinStock:   3,
		CategoryID: "cat-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Martillo de uña", updated.Name)
	assert.Equal(t, 7, updated.CurrentStock, "el update de producto no modifica el stock")
	assert.Equal(t, 3, updated.MinStock)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := newProductUC(newMemStore())

	_, err := uc.Update("no-existe", dto.UpdateProductRequest{
		Name:       "Lo que sea",
		Price:      decimal.RequireFromString("1"),
		CategoryID: "cat-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_ConservaMovimientos(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:         "Martillo",
		Price:        decimal.RequireFromString("19.90"),
		InitialStock: 5,
		CategoryID:   "cat-1",
	})
	require.NoError(t, err)
	require.Len(t, s.movements, 1)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, s.movements, 1,
		"los asientos del libro deben sobrevivir a la eliminación del producto")
}

func TestProductSearch_VacioListaTodo(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")
	seedProduct(s, "prod-1", "Martillo", "cat-1", 3, 5, "19.90")
	seedProduct(s, "prod-2", "Alicate", "cat-1", 8, 5, "12.50")

	out, err := uc.Search("", dto.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page.Total, "búsqueda vacía se comporta como listado")

	out, err = uc.Search("mart", dto.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Martillo", out.Items[0].Name)
}

func TestProductListLowStock_LimiteInclusivo(t *testing.T) {
	s := newMemStore()
	uc := newProductUC(s)
	seedCategory(s, "cat-1", "Herramientas")
	seedProduct(s, "prod-1", "En el límite", "cat-1", 5, 5, "1.00")
	seedProduct(s, "prod-2", "Justo encima", "cat-1", 6, 5, "1.00")
	seedProduct(s, "prod-3", "Agotado", "cat-1", 0, 5, "1.00")

	out, err := uc.ListLowStock()
	require.NoError(t, err)
	require.Len(t, out, 2, "stock == mínimo cuenta como bajo stock; mínimo+1 no")
	for _, p := range out {
		assert.True(t, p.LowStock, "la bandera low_stock debe venir encendida: %s", p.Name)
	}
}

func TestProductGetByID_Inexistente(t *testing.T) {
	uc := newProductUC(newMemStore())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
