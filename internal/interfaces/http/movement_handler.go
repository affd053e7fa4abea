package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/usecase"
)

// MovementHandler consultas de solo lectura sobre el libro de movimientos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// ListAll godoc
// @Summary      Listar movimientos (global, más reciente primero)
// @Tags         movements
// @Produce      json
// @Param        page  query  int  false  "Página (base 0)"   default(0)
// @Param        size  query  int  false  "Tamaño de página"  default(10)
// @Success      200   {object}  dto.MovementListResponse
// @Router       /api/stock-movements [get]
func (h *MovementHandler) ListAll(c *fiber.Ctx) error {
	page := dto.PageRequest{Page: c.QueryInt("page", 0), Size: c.QueryInt("size", 10)}
	out, err := h.uc.ListAll(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Historial de movimientos de un producto
// @Tags         movements
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {array}  dto.StockMovementResponse
// @Router       /api/stock-movements/product/{productId} [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange godoc
// @Summary      Movimientos dentro de un rango de fechas
// @Tags         movements
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (RFC 3339)"
// @Param        to    query  string  true  "Fecha final (RFC 3339)"
// @Success      200   {array}   dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-movements/range [get]
func (h *MovementHandler) ListByDateRange(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, se espera RFC 3339"})
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, se espera RFC 3339"})
	}
	out, err := h.uc.ListByDateRange(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
