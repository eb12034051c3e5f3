package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// La tabla sales es append-only: solo INSERT y SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (sale_id, branch_id, product_id, sale_date, quantity_sold, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.BranchID, sale.ProductID, sale.SaleDate, sale.QuantitySold, sale.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByBranch ventas de una sucursal, más recientes primero.
func (r *SaleRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.Sale, error) {
	query := `
		SELECT sale_id, branch_id, product_id, sale_date, quantity_sold, unit_price
		FROM sales WHERE branch_id = $1 ORDER BY sale_date DESC`
	return r.list(ctx, query, branchID)
}

// ListByProduct ventas de un producto, más recientes primero.
func (r *SaleRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error) {
	query := `
		SELECT sale_id, branch_id, product_id, sale_date, quantity_sold, unit_price
		FROM sales WHERE product_id = $1 ORDER BY sale_date DESC`
	return r.list(ctx, query, productID)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.BranchID, &s.ProductID, &s.SaleDate, &s.QuantitySold, &s.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
