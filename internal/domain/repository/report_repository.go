package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopProductRow producto agregado por cantidad vendida en un mes.
type TopProductRow struct {
	ProductName string
	TotalSold   int
}

// LowStockRow fila de inventario en o por debajo de su punto de reorden.
// BranchName solo se llena en el reporte de compañía.
type LowStockRow struct {
	BranchName     string
	ProductName    string
	QuantityOnHand int
	ReorderPoint   int
}

// BranchRevenueRow ingreso mensual de una sucursal (cero si no vendió).
type BranchRevenueRow struct {
	BranchID   string
	BranchName string
	Revenue    decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes mensuales.
// El mes llega validado como token "YYYY-MM". Sin datos devuelve ceros y
// slices vacíos, nunca error.
type ReportRepository interface {
	BranchRevenue(ctx context.Context, branchID, month string) (decimal.Decimal, error)
	// TopProducts con branchID vacío agrega toda la compañía.
	TopProducts(ctx context.Context, branchID, month string, limit int) ([]TopProductRow, error)
	// LowStock con branchID vacío cubre todas las sucursales e incluye BranchName.
	LowStock(ctx context.Context, branchID string) ([]LowStockRow, error)
	RevenueByBranch(ctx context.Context, month string) ([]BranchRevenueRow, error)
}
