package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/reports"
)

// ReportHandler maneja las peticiones HTTP de reportes mensuales.
type ReportHandler struct {
	uc *reports.AggregatorUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.AggregatorUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Branch godoc
// @Summary      Reporte mensual de una sucursal
// @Description  Ingresos totales, productos más vendidos y resumen de stock bajo para el mes indicado.
// @Tags         reports
// @Produce      json
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Param        month     path  string  true  "Mes en formato YYYY-MM"
// @Success      200  {object}  dto.BranchReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/branch/{branchId}/{month} [get]
func (h *ReportHandler) Branch(c *fiber.Ctx) error {
	rep, err := h.uc.Branch(c.Context(), c.Params("branchId"), c.Params("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rep)
}

// BranchPDF godoc
// @Summary      Reporte mensual de una sucursal en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        branchId  path  string  true  "ID de la sucursal"
// @Param        month     path  string  true  "Mes en formato YYYY-MM"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/branch/{branchId}/{month}/pdf [get]
func (h *ReportHandler) BranchPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.BranchPDF(c.Context(), c.Params("branchId"), c.Params("month"))
	if err != nil {
		return fail(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=reporte_%s_%s.pdf", c.Params("branchId"), c.Params("month")))
	return c.Send(pdf)
}

// Company godoc
// @Summary      Reporte mensual consolidado de la compañía
// @Tags         reports
// @Produce      json
// @Param        month  path  string  true  "Mes en formato YYYY-MM"
// @Success      200  {object}  dto.CompanyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/company/{month} [get]
func (h *ReportHandler) Company(c *fiber.Ctx) error {
	rep, err := h.uc.Company(c.Context(), c.Params("month"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rep)
}
