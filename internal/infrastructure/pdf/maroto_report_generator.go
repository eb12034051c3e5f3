// Package pdf genera la representación gráfica del reporte mensual de
// sucursal: ingreso total, top de productos vendidos y resumen de stock bajo.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/application/reports"
)

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateBranchReportPDF genera el PDF del reporte mensual y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateBranchReportPDF(_ context.Context, report dto.BranchReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual de sucursal", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(revenueRow(report))
	m.AddRows(sectionTitle("Productos más vendidos"))
	m.AddRows(topProductRows(report.TopProducts)...)
	m.AddRows(sectionTitle("Stock bajo (en o bajo punto de reorden)"))
	m.AddRows(lowStockRows(report.LowStockSummary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(report dto.BranchReportDTO) []core.Row {
	return []core.Row{
		row.New(10).Add(
			col.New(8).Add(
				text.New("Reporte mensual de sucursal", props.Text{
					Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Mes: %s", report.Month), props.Text{
					Size: 10, Align: align.Right,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Sucursal: %s", report.BranchID), props.Text{
					Size: 9, Color: colorGray,
				}),
			),
		),
	}
}

func revenueRow(report dto.BranchReportDTO) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Ingreso total del mes: $%s", report.TotalRevenue.StringFixed(2)), props.Text{
				Size: 11, Style: fontstyle.Bold,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Size: 10, Style: fontstyle.Bold, Color: colorWhite,
				Top: 1.5, Left: 2,
			}),
		).WithStyle(&props.Cell{BackgroundColor: colorPrimary}),
	)
}

func topProductRows(products []dto.TopProductDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9})),
			col.New(4).Add(text.New("Unidades", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
		),
	}
	if len(products) == 0 {
		return append(rows, emptyRow("Sin ventas en el mes"))
	}
	for _, p := range products {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(p.ProductName, props.Text{Size: 9})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", p.TotalSold), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func lowStockRows(items []dto.LowStockDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(
			col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9})),
			col.New(3).Add(text.New("En mano", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
			col.New(3).Add(text.New("Reorden", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right})),
		),
	}
	if len(items) == 0 {
		return append(rows, emptyRow("Sin productos bajo punto de reorden"))
	}
	for _, item := range items {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(item.ProductName, props.Text{Size: 9})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", item.QuantityOnHand), props.Text{Size: 9, Align: align.Right})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", item.ReorderPoint), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func emptyRow(message string) core.Row {
	return row.New(5).Add(
		col.New(12).Add(text.New(message, props.Text{Size: 9, Color: colorGray})),
	)
}
