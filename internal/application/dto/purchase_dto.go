package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de una orden de compra nueva.
type PurchaseOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
// Fechas en formato "2006-01-02".
type CreatePurchaseOrderRequest struct {
	SupplierID           string                     `json:"supplier_id"`
	BranchID             string                     `json:"branch_id"`
	OrderDate            string                     `json:"order_date"`
	ExpectedDeliveryDate string                     `json:"expected_delivery_date"`
	Items                []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderStatusRequest body para PUT /api/purchase-orders/:id/status.
type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status"`
}

// PurchaseOrderDTO cabecera de orden de compra.
type PurchaseOrderDTO struct {
	OrderID              string    `json:"po_id"`
	SupplierID           string    `json:"supplier_id"`
	BranchID             string    `json:"branch_id"`
	OrderDate            time.Time `json:"order_date"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`
	Status               string    `json:"status"`
}
