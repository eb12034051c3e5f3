package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/transfer"
)

// TransferHandler maneja las peticiones HTTP de transferencias entre sucursales.
type TransferHandler struct {
	uc *transfer.WorkflowUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.WorkflowUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una transferencia en estado Pending
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Datos de la transferencia"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"transfer_id": id})
}

// ListAll godoc
// @Summary      Listar todas las transferencias
// @Tags         transfers
// @Produce      json
// @Success      200  {array}  dto.TransferDTO
// @Router       /api/transfers [get]
func (h *TransferHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// ListByBranch godoc
// @Summary      Transferencias donde la sucursal es origen o destino
// @Tags         transfers
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Success      200  {array}  dto.TransferDTO
// @Router       /api/transfers/branch/{branchId} [get]
func (h *TransferHandler) ListByBranch(c *fiber.Ctx) error {
	list, err := h.uc.ListByBranch(c.Context(), c.Params("branchId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus godoc
// @Summary      Cambiar el estado de una transferencia
// @Description  Al pasar a Completed se mueve el stock entre sucursales en una sola transacción.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la transferencia"
// @Param        body  body  dto.UpdateTransferStatusRequest true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/status [put]
func (h *TransferHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTransferStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.SetStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "estado actualizado"})
}
