package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/dto"
	"github.com/Sebastian04SRT/Proyecto-Final-Web-Dinamico/internal/application/stock"
)

// StockHandler expone el motor de transiciones de stock.
type StockHandler struct {
	uc *stock.ApplyMovementUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.ApplyMovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Apply godoc
// @Summary      Aplicar un movimiento de stock (ENTRY/EXIT/ADJUSTMENT)
// @Description  Actualiza el stock del producto y registra el asiento en el libro de movimientos como unidad atómica.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ApplyMovementRequest  true  "Movimiento a aplicar"
// @Success      200   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *StockHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, movement, err := h.uc.ApplyMovement(c.Context(), stock.MovementInput{
		ProductID: c.Params("id"),
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApplyMovementResponse{
		Product:  dto.FromProduct(product),
		Movement: dto.FromMovement(movement),
	})
}
