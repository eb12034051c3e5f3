package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// CreateHeader persiste la cabecera de la orden.
func (r *PurchaseOrderRepo) CreateHeader(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders
			(po_id, supplier_id, branch_id, order_date, expected_delivery_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.BranchID, order.OrderDate,
		order.ExpectedDeliveryDate, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden.
func (r *PurchaseOrderRepo) CreateItem(ctx context.Context, item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (item_id, po_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitCost)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetForUpdate lee la cabecera bloqueando la fila (SELECT FOR UPDATE) para la recepción.
func (r *PurchaseOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT po_id, supplier_id, branch_id, order_date, expected_delivery_date, status, created_at
		FROM purchase_orders WHERE po_id = $1
		FOR UPDATE`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SupplierID, &o.BranchID, &o.OrderDate, &o.ExpectedDeliveryDate, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase order for update: %w", err)
	}
	return &o, nil
}

// UpdateStatus sobreescribe el estado de la cabecera.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE purchase_orders SET status = $1 WHERE po_id = $2`
	cmd, err := r.q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll órdenes por fecha descendente.
func (r *PurchaseOrderRepo) ListAll(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT po_id, supplier_id, branch_id, order_date, expected_delivery_date, status, created_at
		FROM purchase_orders ORDER BY order_date DESC`
	return r.list(ctx, query)
}

// ListByBranch órdenes destinadas a una sucursal.
func (r *PurchaseOrderRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT po_id, supplier_id, branch_id, order_date, expected_delivery_date, status, created_at
		FROM purchase_orders WHERE branch_id = $1 ORDER BY order_date DESC`
	return r.list(ctx, query, branchID)
}

// ListBySupplier órdenes emitidas a un proveedor.
func (r *PurchaseOrderRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT po_id, supplier_id, branch_id, order_date, expected_delivery_date, status, created_at
		FROM purchase_orders WHERE supplier_id = $1 ORDER BY order_date DESC`
	return r.list(ctx, query, supplierID)
}

// ListItems líneas de una orden.
func (r *PurchaseOrderRepo) ListItems(ctx context.Context, orderID string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT item_id, po_id, product_id, quantity, unit_cost
		FROM purchase_order_items WHERE po_id = $1`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PurchaseOrderItem
	for rows.Next() {
		var item entity.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitCost); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *PurchaseOrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.SupplierID, &o.BranchID, &o.OrderDate,
			&o.ExpectedDeliveryDate, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
