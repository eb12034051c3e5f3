package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	BranchID     string          `json:"branch_id"`
	ProductID    string          `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// SaleDTO venta registrada.
type SaleDTO struct {
	SaleID       string          `json:"sale_id"`
	BranchID     string          `json:"branch_id"`
	ProductID    string          `json:"product_id"`
	SaleDate     time.Time       `json:"sale_date"`
	QuantitySold int             `json:"quantity_sold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}
