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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ApplyDelta aplica el delta con signo a la fila única (branch, product) en un
// solo UPDATE; el incremento en sitio serializa ajustes concurrentes sobre la
// misma fila. Cero filas afectadas significa que la fila no existe: no se crea.
func (r *InventoryRepo) ApplyDelta(ctx context.Context, branchID, productID string, delta int) error {
	query := `
		UPDATE inventory
		SET quantity_on_hand = quantity_on_hand + $1, updated_at = now()
		WHERE branch_id = $2 AND product_id = $3`
	cmd, err := r.q.Exec(ctx, query, delta, branchID, productID)
	if err != nil {
		return fmt.Errorf("apply inventory delta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get obtiene la fila de inventario de (branch, product); ErrNotFound si no existe.
func (r *InventoryRepo) Get(ctx context.Context, branchID, productID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT branch_id, product_id, quantity_on_hand, reorder_point, safety_stock, updated_at
		FROM inventory WHERE branch_id = $1 AND product_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, branchID, productID).Scan(
		&rec.BranchID, &rec.ProductID, &rec.QuantityOnHand, &rec.ReorderPoint, &rec.SafetyStock, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return &rec, nil
}

// ListByBranch inventario de la sucursal unido con products.
func (r *InventoryRepo) ListByBranch(ctx context.Context, branchID string) ([]repository.BranchInventoryRow, error) {
	query := `
		SELECT
			i.branch_id,
			i.product_id,
			i.quantity_on_hand,
			i.reorder_point,
			i.safety_stock,
			p.product_name,
			p.sku,
			p.unit
		FROM inventory i
		JOIN products p ON i.product_id = p.product_id
		WHERE i.branch_id = $1
		ORDER BY p.product_name`
	rows, err := r.q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by branch: %w", err)
	}
	defer rows.Close()

	var list []repository.BranchInventoryRow
	for rows.Next() {
		var row repository.BranchInventoryRow
		if err := rows.Scan(
			&row.BranchID, &row.ProductID, &row.QuantityOnHand,
			&row.ReorderPoint, &row.SafetyStock,
			&row.ProductName, &row.SKU, &row.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
