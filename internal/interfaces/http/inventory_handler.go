package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del motor de ajustes de stock.
type InventoryHandler struct {
	uc *inventory.AdjustUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.AdjustUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar inventario de una sucursal
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "branch_id, product_id, quantity, type (receive|issue|sale)"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AdjustFromRequest(c.Context(), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventario actualizado"})
}

// ListByBranch godoc
// @Summary      Inventario de una sucursal con datos de producto
// @Tags         inventory
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Success      200  {array}   dto.BranchInventoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{branchId} [get]
func (h *InventoryHandler) ListByBranch(c *fiber.Ctx) error {
	list, err := h.uc.ListByBranch(c.Context(), c.Params("branchId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
