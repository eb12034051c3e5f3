package dto

// AdjustInventoryRequest body para POST /api/inventory/adjust.
// Type decide el signo del delta: receive suma, issue y sale restan.
type AdjustInventoryRequest struct {
	BranchID  string `json:"branch_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Type      string `json:"type"`
}

// BranchInventoryDTO fila de inventario de sucursal unida con su producto.
type BranchInventoryDTO struct {
	BranchID       string `json:"branch_id"`
	ProductID      string `json:"product_id"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	ReorderPoint   int    `json:"reorder_point"`
	SafetyStock    int    `json:"safety_stock"`
	ProductName    string `json:"product_name"`
	SKU            string `json:"sku"`
	Unit           string `json:"unit"`
}
