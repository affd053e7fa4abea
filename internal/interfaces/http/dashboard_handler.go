package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
)

// DashboardHandler expone las métricas agregadas del inventario.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics godoc
// @Summary      Métricas del dashboard
// @Description  Total de productos, total de categorías, productos en bajo stock y valor total del inventario.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	out, err := h.uc.GetMetrics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
