package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto sobre purchase_orders y purchase_order_items.
type PurchaseOrderRepository interface {
	CreateHeader(ctx context.Context, order *entity.PurchaseOrder) error
	CreateItem(ctx context.Context, item *entity.PurchaseOrderItem) error
	// GetForUpdate bloquea la cabecera para la recepción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListAll(ctx context.Context) ([]*entity.PurchaseOrder, error)
	ListByBranch(ctx context.Context, branchID string) ([]*entity.PurchaseOrder, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.PurchaseOrder, error)
	ListItems(ctx context.Context, orderID string) ([]*entity.PurchaseOrderItem, error)
}
