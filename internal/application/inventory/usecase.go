package inventory

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// Tipos de ajuste aceptados. Solo deciden el signo del delta; no tienen más
// semántica que esa.
const (
	AdjustmentTypeReceive = "receive"
	AdjustmentTypeIssue   = "issue"
	AdjustmentTypeSale    = "sale"
)

// AdjustUseCase es el motor de ajustes de stock: todo cambio de
// quantity_on_hand pasa por aquí (o por ApplyDelta dentro de la transacción de
// otro flujo). Aplica exactamente un delta con signo a exactamente una fila
// (sucursal, producto) existente; nunca crea la fila ni dispara alertas.
type AdjustUseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository // lecturas fuera de transacción
}

// NewAdjustUseCase construye el motor de ajustes.
func NewAdjustUseCase(txRunner TxRunner, invRepo repository.InventoryRepository) *AdjustUseCase {
	return &AdjustUseCase{txRunner: txRunner, invRepo: invRepo}
}

// Adjust aplica quantity_on_hand += delta a la fila (branchID, productID).
// Delta cero es un no-op legal: confirma que la fila existe y no cambia nada.
// Devuelve domain.ErrNotFound si la fila no existe.
func (uc *AdjustUseCase) Adjust(ctx context.Context, branchID, productID string, delta int) error {
	if branchID == "" || productID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		return invRepo.ApplyDelta(ctx, branchID, productID, delta)
	})
}

// AdjustFromRequest adapta el body HTTP al motor: valida el tipo y elige el
// signo (receive suma; issue y sale restan).
func (uc *AdjustUseCase) AdjustFromRequest(ctx context.Context, in dto.AdjustInventoryRequest) error {
	if in.BranchID == "" || in.ProductID == "" || in.Type == "" {
		return domain.ErrInvalidInput
	}
	var delta int
	switch in.Type {
	case AdjustmentTypeReceive:
		delta = in.Quantity
	case AdjustmentTypeIssue, AdjustmentTypeSale:
		delta = -in.Quantity
	default:
		return domain.ErrInvalidInput
	}
	return uc.Adjust(ctx, in.BranchID, in.ProductID, delta)
}

// ListByBranch devuelve el inventario de una sucursal unido con sus productos.
func (uc *AdjustUseCase) ListByBranch(ctx context.Context, branchID string) ([]dto.BranchInventoryDTO, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.invRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchInventoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BranchInventoryDTO{
			BranchID:       r.BranchID,
			ProductID:      r.ProductID,
			QuantityOnHand: r.QuantityOnHand,
			ReorderPoint:   r.ReorderPoint,
			SafetyStock:    r.SafetyStock,
			ProductName:    r.ProductName,
			SKU:            r.SKU,
			Unit:           r.Unit,
		})
	}
	return out, nil
}
