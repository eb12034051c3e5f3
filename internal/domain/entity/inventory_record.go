package entity

import "time"

// InventoryRecord es la fila de stock por sucursal+producto (identidad compuesta).
// Existe exactamente una por par (BranchID, ProductID); se crea fuera del motor
// de ajustes y éste nunca la crea automáticamente. QuantityOnHand puede quedar
// negativa: no se impone piso.
type InventoryRecord struct {
	BranchID       string
	ProductID      string
	QuantityOnHand int
	ReorderPoint   int
	SafetyStock    int
	UpdatedAt      time.Time
}
