package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchaseOrderStatusPending  = "Pending"
	PurchaseOrderStatusApproved = "Approved"
	PurchaseOrderStatusReceived = "Received"
)

// PurchaseOrder es la cabecera de una orden de compra a un proveedor,
// destinada a una sucursal. Las líneas se crean atómicamente con la cabecera.
type PurchaseOrder struct {
	ID                   string
	SupplierID           string
	BranchID             string
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Status               string
	CreatedAt            time.Time
}

// PurchaseOrderItem es una línea de la orden: producto, cantidad y costo unitario.
type PurchaseOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitCost  decimal.Decimal
}
