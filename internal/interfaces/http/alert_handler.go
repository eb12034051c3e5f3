package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/alerts"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock.
type AlertHandler struct {
	uc *alerts.EmitterUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.EmitterUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Create godoc
// @Summary      Crear una alerta
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlertRequest  true  "Datos de la alerta"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/alerts [post]
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"alert_id": id})
}

// ListAll godoc
// @Summary      Listar todas las alertas
// @Tags         alerts
// @Produce      json
// @Success      200  {array}  dto.AlertDTO
// @Router       /api/alerts [get]
func (h *AlertHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// ListByBranch godoc
// @Summary      Alertas de una sucursal
// @Tags         alerts
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Success      200  {array}  dto.AlertDTO
// @Router       /api/alerts/branch/{branchId} [get]
func (h *AlertHandler) ListByBranch(c *fiber.Ctx) error {
	list, err := h.uc.ListByBranch(c.Context(), c.Params("branchId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// MarkRead godoc
// @Summary      Marcar una alerta como leída
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/read [put]
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "alerta marcada como leída"})
}

// Delete godoc
// @Summary      Eliminar una alerta
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id} [delete]
func (h *AlertHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "alerta eliminada"})
}
