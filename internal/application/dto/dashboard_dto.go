package dto

import "github.com/shopspring/decimal"

// DashboardMetricsDTO respuesta de GET /api/dashboard/metrics.
// Las cuatro métricas se calculan con consultas independientes; bajo escrituras
// concurrentes pueden no ser un snapshot transaccional (aceptado para dashboard).
type DashboardMetricsDTO struct {
	TotalProducts       int64           `json:"total_products"`
	TotalCategories     int64           `json:"total_categories"`
	LowStockCount       int64           `json:"low_stock_count"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
}
