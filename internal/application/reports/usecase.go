package reports

import (
	"context"
	"time"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// topProductsLimit productos en el top de cada reporte.
const topProductsLimit = 5

// PDFGenerator puerto para la representación gráfica del reporte mensual de
// sucursal (implementado con Maroto en infraestructura).
type PDFGenerator interface {
	GenerateBranchReportPDF(ctx context.Context, report dto.BranchReportDTO) ([]byte, error)
}

// AggregatorUseCase reportes mensuales de solo lectura sobre el ledger.
// Ausencia de datos produce ceros y listas vacías, nunca error.
type AggregatorUseCase struct {
	reportRepo repository.ReportRepository
	pdf        PDFGenerator
}

// NewAggregatorUseCase construye el agregador de reportes.
func NewAggregatorUseCase(reportRepo repository.ReportRepository, pdf PDFGenerator) *AggregatorUseCase {
	return &AggregatorUseCase{reportRepo: reportRepo, pdf: pdf}
}

// validateMonth acepta el token opaco "YYYY-MM".
func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return domain.ErrInvalidMonth
	}
	return nil
}

// Branch arma el reporte mensual de una sucursal: ingreso total, top de
// productos por cantidad vendida y resumen de stock bajo (sin filtro de mes:
// el stock bajo es el estado actual).
func (uc *AggregatorUseCase) Branch(ctx context.Context, branchID, month string) (*dto.BranchReportDTO, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	revenue, err := uc.reportRepo.BranchRevenue(ctx, branchID, month)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(ctx, branchID, month, topProductsLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.reportRepo.LowStock(ctx, branchID)
	if err != nil {
		return nil, err
	}

	return &dto.BranchReportDTO{
		BranchID:        branchID,
		Month:           month,
		TotalRevenue:    revenue,
		TopProducts:     topProductDTOs(top),
		LowStockSummary: lowStockDTOs(lowStock, false),
	}, nil
}

// Company arma el reporte mensual de toda la cadena: ingreso por sucursal
// (cero para sucursales sin ventas), top de productos global y stock bajo de
// todas las sucursales con el nombre de cada una.
func (uc *AggregatorUseCase) Company(ctx context.Context, month string) (*dto.CompanyReportDTO, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	byBranch, err := uc.reportRepo.RevenueByBranch(ctx, month)
	if err != nil {
		return nil, err
	}
	top, err := uc.reportRepo.TopProducts(ctx, "", month, topProductsLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.reportRepo.LowStock(ctx, "")
	if err != nil {
		return nil, err
	}

	revenue := make([]dto.BranchRevenueDTO, 0, len(byBranch))
	for _, r := range byBranch {
		revenue = append(revenue, dto.BranchRevenueDTO{
			BranchID:   r.BranchID,
			BranchName: r.BranchName,
			Revenue:    r.Revenue,
		})
	}

	return &dto.CompanyReportDTO{
		Month:           month,
		BranchRevenue:   revenue,
		TopProducts:     topProductDTOs(top),
		LowStockSummary: lowStockDTOs(lowStock, true),
	}, nil
}

// BranchPDF genera el reporte de sucursal como PDF.
func (uc *AggregatorUseCase) BranchPDF(ctx context.Context, branchID, month string) ([]byte, error) {
	report, err := uc.Branch(ctx, branchID, month)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateBranchReportPDF(ctx, *report)
}

func topProductDTOs(rows []repository.TopProductRow) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{ProductName: r.ProductName, TotalSold: r.TotalSold})
	}
	return out
}

func lowStockDTOs(rows []repository.LowStockRow, withBranch bool) []dto.LowStockDTO {
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		d := dto.LowStockDTO{
			ProductName:    r.ProductName,
			QuantityOnHand: r.QuantityOnHand,
			ReorderPoint:   r.ReorderPoint,
		}
		if withBranch {
			d.BranchName = r.BranchName
		}
		out = append(out, d)
	}
	return out
}
