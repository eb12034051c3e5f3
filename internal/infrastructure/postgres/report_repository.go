package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes mensuales. El mes
// llega como token "YYYY-MM" ya validado y se compara contra
// to_char(sale_date, 'YYYY-MM').
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// BranchRevenue ingreso total de una sucursal en el mes. COALESCE devuelve
// cero cuando no hubo ventas.
func (r *ReportRepo) BranchRevenue(ctx context.Context, branchID, month string) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(quantity_sold * unit_price), 0) AS total_revenue
	FROM sales
	WHERE branch_id = $1
	  AND to_char(sale_date, 'YYYY-MM') = $2`

	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, branchID, month).Scan(&revenue); err != nil {
		return decimal.Zero, fmt.Errorf("reports.BranchRevenue: %w", err)
	}
	return revenue, nil
}

// TopProducts productos con mayor cantidad vendida en el mes, descendente.
// Con branchID vacío agrega todas las sucursales.
func (r *ReportRepo) TopProducts(ctx context.Context, branchID, month string, limit int) ([]repository.TopProductRow, error) {
	const query = `
	SELECT
	    p.product_name,
	    SUM(s.quantity_sold) AS total_sold
	FROM sales s
	JOIN products p ON s.product_id = p.product_id
	WHERE ($1 = '' OR s.branch_id = $1)
	  AND to_char(s.sale_date, 'YYYY-MM') = $2
	GROUP BY p.product_name
	ORDER BY total_sold DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, branchID, month, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductName, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("reports.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStock filas de inventario en o bajo su punto de reorden. Con branchID
// vacío cubre todas las sucursales e incluye el nombre de cada una.
func (r *ReportRepo) LowStock(ctx context.Context, branchID string) ([]repository.LowStockRow, error) {
	const query = `
	SELECT
	    b.branch_name,
	    p.product_name,
	    i.quantity_on_hand,
	    i.reorder_point
	FROM inventory i
	JOIN products p ON i.product_id = p.product_id
	JOIN branches b ON i.branch_id  = b.branch_id
	WHERE ($1 = '' OR i.branch_id = $1)
	  AND i.quantity_on_hand <= i.reorder_point
	ORDER BY b.branch_name, p.product_name`

	rows, err := r.pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("reports.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.BranchName, &row.ProductName, &row.QuantityOnHand, &row.ReorderPoint); err != nil {
			return nil, fmt.Errorf("reports.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RevenueByBranch ingreso del mes por sucursal. El LEFT JOIN conserva las
// sucursales sin ventas con ingreso cero.
func (r *ReportRepo) RevenueByBranch(ctx context.Context, month string) ([]repository.BranchRevenueRow, error) {
	const query = `
	SELECT
	    b.branch_id,
	    b.branch_name,
	    COALESCE(SUM(s.quantity_sold * s.unit_price), 0) AS revenue
	FROM branches b
	LEFT JOIN sales s
	    ON b.branch_id = s.branch_id
	    AND to_char(s.sale_date, 'YYYY-MM') = $1
	GROUP BY b.branch_id, b.branch_name
	ORDER BY b.branch_name`

	rows, err := r.pool.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("reports.RevenueByBranch: %w", err)
	}
	defer rows.Close()

	var results []repository.BranchRevenueRow
	for rows.Next() {
		var row repository.BranchRevenueRow
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.Revenue); err != nil {
			return nil, fmt.Errorf("reports.RevenueByBranch scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
