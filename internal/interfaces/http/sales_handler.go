package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/sales"
)

// SalesHandler maneja las peticiones HTTP de ventas.
type SalesHandler struct {
	uc *sales.RecorderUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.RecorderUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar una venta y descontar inventario
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Record(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sale_id": id})
}

// ListByBranch godoc
// @Summary      Ventas de una sucursal
// @Tags         sales
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Success      200  {array}  dto.SaleDTO
// @Router       /api/sales/branch/{branchId} [get]
func (h *SalesHandler) ListByBranch(c *fiber.Ctx) error {
	list, err := h.uc.ListByBranch(c.Context(), c.Params("branchId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// ListByProduct godoc
// @Summary      Ventas de un producto en todas las sucursales
// @Tags         sales
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.SaleDTO
// @Router       /api/sales/product/{productId} [get]
func (h *SalesHandler) ListByProduct(c *fiber.Ctx) error {
	list, err := h.uc.ListByProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
