package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta registrada en una sucursal. Append-only: nunca se
// actualiza ni se borra. SaleDate la asigna el servidor al insertar.
type Sale struct {
	ID           string
	BranchID     string
	ProductID    string
	SaleDate     time.Time
	QuantitySold int
	UnitPrice    decimal.Decimal // precio al momento de la venta
}
