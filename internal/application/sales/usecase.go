package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta una función con repos de venta e inventario atados a la
// misma transacción: la venta y su descuento de stock son una sola unidad.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// RecorderUseCase registra ventas: inserta la fila en sales con hora del
// servidor y descuenta el stock en la misma transacción. Si la fila de
// inventario no existe, todo se revierte: no quedan ventas colgantes.
type RecorderUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository // listados fuera de transacción
}

// NewRecorderUseCase construye el registrador de ventas.
func NewRecorderUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *RecorderUseCase {
	return &RecorderUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Record valida la entrada, inserta la venta y aplica delta = -QuantitySold.
// Devuelve domain.ErrNotFound si no existe inventario para (branch, product);
// en ese caso la venta no queda registrada.
func (uc *RecorderUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (string, error) {
	if in.BranchID == "" || in.ProductID == "" {
		return "", domain.ErrInvalidInput
	}
	if in.QuantitySold <= 0 || !in.UnitPrice.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}

	sale := &entity.Sale{
		ID:           uuid.New().String(),
		BranchID:     in.BranchID,
		ProductID:    in.ProductID,
		SaleDate:     time.Now(),
		QuantitySold: in.QuantitySold,
		UnitPrice:    in.UnitPrice,
	}

	err := uc.txRunner.RunSale(ctx, func(
		invRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		return invRepo.ApplyDelta(ctx, in.BranchID, in.ProductID, -in.QuantitySold)
	})
	if err != nil {
		return "", err
	}
	return sale.ID, nil
}

// ListByBranch ventas de una sucursal, más recientes primero.
func (uc *RecorderUseCase) ListByBranch(ctx context.Context, branchID string) ([]dto.SaleDTO, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return toDTOs(sales), nil
}

// ListByProduct ventas de un producto en todas las sucursales.
func (uc *RecorderUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.SaleDTO, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toDTOs(sales), nil
}

func toDTOs(sales []*entity.Sale) []dto.SaleDTO {
	out := make([]dto.SaleDTO, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.SaleDTO{
			SaleID:       s.ID,
			BranchID:     s.BranchID,
			ProductID:    s.ProductID,
			SaleDate:     s.SaleDate,
			QuantitySold: s.QuantitySold,
			UnitPrice:    s.UnitPrice,
		})
	}
	return out
}
