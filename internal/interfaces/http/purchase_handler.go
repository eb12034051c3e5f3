package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/purchasing"
)

// PurchaseHandler maneja las peticiones HTTP de órdenes de compra.
type PurchaseHandler struct {
	uc *purchasing.UseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *purchasing.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una orden de compra con sus líneas
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Cabecera y líneas"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"po_id": id})
}

// ListAll godoc
// @Summary      Listar todas las órdenes de compra
// @Tags         purchase-orders
// @Produce      json
// @Success      200  {array}  dto.PurchaseOrderDTO
// @Router       /api/purchase-orders [get]
func (h *PurchaseHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// ListByBranch godoc
// @Summary      Órdenes de compra destinadas a una sucursal
// @Tags         purchase-orders
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Success      200  {array}  dto.PurchaseOrderDTO
// @Router       /api/purchase-orders/branch/{branchId} [get]
func (h *PurchaseHandler) ListByBranch(c *fiber.Ctx) error {
	list, err := h.uc.ListByBranch(c.Context(), c.Params("branchId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// ListBySupplier godoc
// @Summary      Órdenes de compra de un proveedor
// @Tags         purchase-orders
// @Produce      json
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Success      200  {array}  dto.PurchaseOrderDTO
// @Router       /api/purchase-orders/supplier/{supplierId} [get]
func (h *PurchaseHandler) ListBySupplier(c *fiber.Ctx) error {
	list, err := h.uc.ListBySupplier(c.Context(), c.Params("supplierId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                               true  "ID de la orden"
// @Param        body  body  dto.UpdatePurchaseOrderStatusRequest true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/status [put]
func (h *PurchaseHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "estado actualizado"})
}

// Receive godoc
// @Summary      Recibir una orden de compra y abonar stock
// @Description  Marca la orden como Received y suma las cantidades de cada línea al inventario de la sucursal destino.
// @Tags         purchase-orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/receive [post]
func (h *PurchaseHandler) Receive(c *fiber.Ctx) error {
	if err := h.uc.Receive(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "orden recibida"})
}
