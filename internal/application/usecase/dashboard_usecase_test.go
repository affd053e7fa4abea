package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
)

func newDashboardUC(s *memStore) *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(memProductRepo{s: s}, memCategoryRepo{s: s})
}

func TestDashboardMetrics_InventarioVacio(t *testing.T) {
	uc := newDashboardUC(newMemStore())

	out, err := uc.GetMetrics()
	require.NoError(t, err)

	assert.Zero(t, out.TotalProducts)
	assert.Zero(t, out.TotalCategories)
	assert.Zero(t, out.LowStockCount)
	assert.True(t, out.TotalInventoryValue.IsZero(),
		"con inventario vacío el valor total es cero, nunca null")
}

func TestDashboardMetrics_ConDatos(t *testing.T) {
	s := newMemStore()
	uc := newDashboardUC(s)

	seedCategory(s, "cat-1", "Herramientas")
	seedCategory(s, "cat-2", "Pinturas")
	seedProduct(s, "prod-1", "Martillo", "cat-1", 4, 5, "10.50") // bajo stock, 42.00
	seedProduct(s, "prod-2", "Alicate", "cat-1", 8, 5, "3.00")   // 24.00
	seedProduct(s, "prod-3", "Esmalte", "cat-2", 0, 5, "7.25")   // agotado, 0.00

	out, err := uc.GetMetrics()
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalProducts)
	assert.Equal(t, int64(2), out.TotalCategories)
	assert.Equal(t, int64(2), out.LowStockCount, "en el límite y agotado cuentan como bajo stock")
	assert.True(t, out.TotalInventoryValue.Equal(decimal.RequireFromString("66.00")),
		"Σ precio × stock = 42.00 + 24.00, obtenido %s", out.TotalInventoryValue)
}
