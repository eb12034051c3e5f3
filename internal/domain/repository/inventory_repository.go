package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// BranchInventoryRow fila de inventario de una sucursal unida con su producto.
type BranchInventoryRow struct {
	BranchID       string
	ProductID      string
	QuantityOnHand int
	ReorderPoint   int
	SafetyStock    int
	ProductName    string
	SKU            string
	Unit           string
}

// InventoryRepository puerto sobre la tabla inventory (una fila por
// sucursal+producto). ApplyDelta es la primitiva atómica de la que dependen
// ventas, transferencias y recepciones: un solo UPDATE con delta con signo.
type InventoryRepository interface {
	// ApplyDelta aplica quantity_on_hand += delta a la fila única
	// (branchID, productID). Devuelve domain.ErrNotFound si la fila no
	// existe; nunca la crea.
	ApplyDelta(ctx context.Context, branchID, productID string, delta int) error
	Get(ctx context.Context, branchID, productID string) (*entity.InventoryRecord, error)
	ListByBranch(ctx context.Context, branchID string) ([]BranchInventoryRow, error)
}
