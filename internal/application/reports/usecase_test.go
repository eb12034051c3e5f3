package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/reports"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// fakeReportRepo devuelve datos fijos por mes; meses sin datos producen ceros.
type fakeReportRepo struct {
	revenue  map[string]decimal.Decimal // "branch|month" -> ingreso
	top      []repository.TopProductRow
	lowStock []repository.LowStockRow
	byBranch map[string][]repository.BranchRevenueRow // month -> filas
}

func (f *fakeReportRepo) BranchRevenue(_ context.Context, branchID, month string) (decimal.Decimal, error) {
	if r, ok := f.revenue[branchID+"|"+month]; ok {
		return r, nil
	}
	return decimal.Zero, nil
}

func (f *fakeReportRepo) TopProducts(_ context.Context, _, _ string, limit int) ([]repository.TopProductRow, error) {
	if len(f.top) > limit {
		return f.top[:limit], nil
	}
	return f.top, nil
}

func (f *fakeReportRepo) LowStock(context.Context, string) ([]repository.LowStockRow, error) {
	return f.lowStock, nil
}

func (f *fakeReportRepo) RevenueByBranch(_ context.Context, month string) ([]repository.BranchRevenueRow, error) {
	return f.byBranch[month], nil
}

// fakePDF registra el reporte recibido y devuelve bytes fijos.
type fakePDF struct {
	got *dto.BranchReportDTO
}

func (f *fakePDF) GenerateBranchReportPDF(_ context.Context, report dto.BranchReportDTO) ([]byte, error) {
	f.got = &report
	return []byte("%PDF-fake"), nil
}

func TestBranch_ArmaElReporteDelMes(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: map[string]decimal.Decimal{"b1|2026-03": decimal.RequireFromString("1250.50")},
		top: []repository.TopProductRow{
			{ProductName: "Café molido", TotalSold: 40},
			{ProductName: "Azúcar", TotalSold: 12},
		},
		lowStock: []repository.LowStockRow{
			{ProductName: "Azúcar", QuantityOnHand: 2, ReorderPoint: 5},
		},
	}
	uc := reports.NewAggregatorUseCase(repo, &fakePDF{})

	rep, err := uc.Branch(context.Background(), "b1", "2026-03")

	require.NoError(t, err)
	assert.Equal(t, "b1", rep.BranchID)
	assert.Equal(t, "2026-03", rep.Month)
	assert.True(t, rep.TotalRevenue.Equal(decimal.RequireFromString("1250.50")))
	require.Len(t, rep.TopProducts, 2)
	assert.Equal(t, "Café molido", rep.TopProducts[0].ProductName)
	require.Len(t, rep.LowStockSummary, 1)
	assert.Empty(t, rep.LowStockSummary[0].BranchName,
		"el reporte de sucursal no repite el nombre de la sucursal")
}

func TestBranch_MesSinDatosDevuelveCeros(t *testing.T) {
	repo := &fakeReportRepo{revenue: map[string]decimal.Decimal{}}
	uc := reports.NewAggregatorUseCase(repo, &fakePDF{})

	rep, err := uc.Branch(context.Background(), "b1", "2026-07")

	require.NoError(t, err, "un mes sin movimiento no es un error")
	assert.True(t, rep.TotalRevenue.IsZero())
	assert.Empty(t, rep.TopProducts)
}

func TestBranch_MesMalFormado(t *testing.T) {
	uc := reports.NewAggregatorUseCase(&fakeReportRepo{}, &fakePDF{})

	casos := []string{"2026-13", "2026-3", "marzo-2026", "2026/03", ""}
	for _, mes := range casos {
		_, err := uc.Branch(context.Background(), "b1", mes)
		assert.ErrorIs(t, err, domain.ErrInvalidMonth, "mes %q debe rechazarse", mes)
	}
}

func TestCompany_IncluyeSucursalesSinVentas(t *testing.T) {
	repo := &fakeReportRepo{
		byBranch: map[string][]repository.BranchRevenueRow{
			"2026-03": {
				{BranchID: "b1", BranchName: "Centro", Revenue: decimal.RequireFromString("900")},
				{BranchID: "b2", BranchName: "Norte", Revenue: decimal.Zero},
			},
		},
		lowStock: []repository.LowStockRow{
			{BranchName: "Norte", ProductName: "Azúcar", QuantityOnHand: 2, ReorderPoint: 5},
		},
	}
	uc := reports.NewAggregatorUseCase(repo, &fakePDF{})

	rep, err := uc.Company(context.Background(), "2026-03")

	require.NoError(t, err)
	require.Len(t, rep.BranchRevenue, 2, "las sucursales sin ventas aparecen con ingreso cero")
	assert.True(t, rep.BranchRevenue[1].Revenue.IsZero())
	require.Len(t, rep.LowStockSummary, 1)
	assert.Equal(t, "Norte", rep.LowStockSummary[0].BranchName,
		"el reporte de compañía sí nombra la sucursal")
}

func TestCompany_MesMalFormado(t *testing.T) {
	uc := reports.NewAggregatorUseCase(&fakeReportRepo{}, &fakePDF{})

	_, err := uc.Company(context.Background(), "03-2026")

	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestBranchPDF_DelegaEnElGenerador(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: map[string]decimal.Decimal{"b1|2026-03": decimal.RequireFromString("100")},
	}
	pdf := &fakePDF{}
	uc := reports.NewAggregatorUseCase(repo, pdf)

	out, err := uc.BranchPDF(context.Background(), "b1", "2026-03")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	require.NotNil(t, pdf.got, "el generador debe recibir el reporte armado")
	assert.Equal(t, "b1", pdf.got.BranchID)
	assert.True(t, pdf.got.TotalRevenue.Equal(decimal.RequireFromString("100")))
}

func TestBranchPDF_MesInvalidoNoGenera(t *testing.T) {
	pdf := &fakePDF{}
	uc := reports.NewAggregatorUseCase(&fakeReportRepo{}, pdf)

	_, err := uc.BranchPDF(context.Background(), "b1", "no-mes")

	assert.ErrorIs(t, err, domain.ErrInvalidMonth)
	assert.Nil(t, pdf.got, "no debe llegar a generar nada")
}
