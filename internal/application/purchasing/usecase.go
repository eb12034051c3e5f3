package purchasing

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

// TxRunner ejecuta una función con repos de órdenes e inventario atados a la
// misma transacción (creación cabecera+líneas, recepción con crédito de stock).
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}

// UseCase órdenes de compra: la cabecera y sus líneas se crean en una sola
// transacción, y la recepción acredita el stock de cada línea también de forma
// atómica (todas las líneas o ninguna).
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.PurchaseOrderRepository // listados fuera de transacción
}

// NewUseCase construye el flujo de compras.
func NewUseCase(txRunner TxRunner, orderRepo repository.PurchaseOrderRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Create inserta la cabecera en Pending y todas sus líneas; si alguna línea
// falla no queda nada escrito. Devuelve el id de la orden.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (string, error) {
	if in.SupplierID == "" || in.BranchID == "" || len(in.Items) == 0 {
		return "", domain.ErrInvalidInput
	}
	orderDate, err := time.Parse("2006-01-02", in.OrderDate)
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	expectedDate, err := time.Parse("2006-01-02", in.ExpectedDeliveryDate)
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitCost.LessThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
	}

	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		SupplierID:           in.SupplierID,
		BranchID:             in.BranchID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expectedDate,
		Status:               entity.PurchaseOrderStatusPending,
		CreatedAt:            time.Now(),
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		_ repository.InventoryRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		if err := orderRepo.CreateHeader(ctx, order); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &entity.PurchaseOrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitCost:  item.UnitCost,
			}
			if err := orderRepo.CreateItem(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

// Receive marca la orden como Received y acredita el stock de cada línea en
// la sucursal destino, todo en una transacción. Solo se reciben órdenes en
// Pending o Approved; recibir dos veces devuelve ErrConflict. Si alguna línea
// no tiene fila de inventario en la sucursal, toda la recepción se revierte.
func (uc *UseCase) Receive(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunPurchase(ctx, func(
		invRepo repository.InventoryRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		order, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != entity.PurchaseOrderStatusPending && order.Status != entity.PurchaseOrderStatusApproved {
			return domain.ErrConflict
		}
		if err := orderRepo.UpdateStatus(ctx, orderID, entity.PurchaseOrderStatusReceived); err != nil {
			return err
		}
		items, err := orderRepo.ListItems(ctx, orderID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := invRepo.ApplyDelta(ctx, order.BranchID, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetStatus sobreescribe el estado de la cabecera sin tocar inventario
// (la recepción con crédito de stock es Receive).
func (uc *UseCase) SetStatus(ctx context.Context, orderID, status string) error {
	if orderID == "" || status == "" {
		return domain.ErrInvalidInput
	}
	return uc.orderRepo.UpdateStatus(ctx, orderID, status)
}

// ListAll órdenes por fecha descendente.
func (uc *UseCase) ListAll(ctx context.Context) ([]dto.PurchaseOrderDTO, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

// ListByBranch órdenes destinadas a una sucursal.
func (uc *UseCase) ListByBranch(ctx context.Context, branchID string) ([]dto.PurchaseOrderDTO, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

// ListBySupplier órdenes emitidas a un proveedor.
func (uc *UseCase) ListBySupplier(ctx context.Context, supplierID string) ([]dto.PurchaseOrderDTO, error) {
	if supplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return toDTOs(orders), nil
}

func toDTOs(orders []*entity.PurchaseOrder) []dto.PurchaseOrderDTO {
	out := make([]dto.PurchaseOrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.PurchaseOrderDTO{
			OrderID:              o.ID,
			SupplierID:           o.SupplierID,
			BranchID:             o.BranchID,
			OrderDate:            o.OrderDate,
			ExpectedDeliveryDate: o.ExpectedDeliveryDate,
			Status:               o.Status,
		})
	}
	return out
}
