package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/domain/repository"
)

// DashboardUseCase calcula las métricas agregadas del dashboard: total de
// productos, total de categorías, productos en bajo stock y valor total del
// inventario (Σ precio × stock).
//
// Las cuatro consultas son independientes y corren en paralelo; bajo escrituras
// concurrentes el resultado no es un snapshot transaccional (aceptado para un
// dashboard, no para conciliación).
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// GetMetrics devuelve las métricas del dashboard. Con inventario vacío el valor
// total reporta cero, nunca null.
func (uc *DashboardUseCase) GetMetrics() (*dto.DashboardMetricsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}

	productsCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)

	go func() {
		n, err := uc.productRepo.Count()
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.categoryRepo.Count()
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.productRepo.CountLowStock()
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.productRepo.TotalInventoryValue()
		valueCh <- valueResult{v, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	lowStock := <-lowStockCh
	value := <-valueCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: total de categorías: %w", categories.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: productos en bajo stock: %w", lowStock.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor del inventario: %w", value.err)
	}

	return &dto.DashboardMetricsDTO{
		TotalProducts:       products.n,
		TotalCategories:     categories.n,
		LowStockCount:       lowStock.n,
		TotalInventoryValue: value.v,
	}, nil
}
