package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto por cantidad vendida en el mes, descendente.
type TopProductDTO struct {
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}

// LowStockDTO fila en o bajo su punto de reorden. BranchName solo aparece
// en el reporte de compañía.
type LowStockDTO struct {
	BranchName     string `json:"branch_name,omitempty"`
	ProductName    string `json:"product_name"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	ReorderPoint   int    `json:"reorder_point"`
}

// BranchReportDTO respuesta de GET /api/reports/branch/:branchId/:month.
type BranchReportDTO struct {
	BranchID        string          `json:"branch_id"`
	Month           string          `json:"month"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TopProducts     []TopProductDTO `json:"top_products"`
	LowStockSummary []LowStockDTO   `json:"low_stock_summary"`
}

// BranchRevenueDTO ingreso mensual por sucursal (cero si no vendió).
type BranchRevenueDTO struct {
	BranchID   string          `json:"branch_id"`
	BranchName string          `json:"branch_name"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CompanyReportDTO respuesta de GET /api/reports/company/:month.
type CompanyReportDTO struct {
	Month           string             `json:"month"`
	BranchRevenue   []BranchRevenueDTO `json:"branch_revenue"`
	TopProducts     []TopProductDTO    `json:"top_products"`
	LowStockSummary []LowStockDTO      `json:"low_stock_summary"`
}
