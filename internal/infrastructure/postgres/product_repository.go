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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto; SKU duplicado devuelve ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (product_id, product_name, sku, category, unit, unit_price, default_supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.SKU, product.Category, product.Unit,
		product.UnitPrice, product.DefaultSupplierID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT product_id, product_name, sku, category, unit, unit_price, default_supplier_id, created_at, updated_at
		FROM products WHERE product_id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Category, &p.Unit, &p.UnitPrice,
		&p.DefaultSupplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll catálogo con el nombre del proveedor habitual (LEFT JOIN: el
// proveedor es opcional).
func (r *ProductRepo) ListAll(ctx context.Context) ([]repository.ProductListRow, error) {
	query := `
		SELECT p.product_id, p.product_name, p.sku, p.category, p.unit, p.unit_price,
		       p.default_supplier_id, p.created_at, p.updated_at, s.supplier_name
		FROM products p
		LEFT JOIN suppliers s ON p.default_supplier_id = s.supplier_id
		ORDER BY p.product_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []repository.ProductListRow
	for rows.Next() {
		var row repository.ProductListRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.SKU, &row.Category, &row.Unit, &row.UnitPrice,
			&row.DefaultSupplierID, &row.CreatedAt, &row.UpdatedAt, &row.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Update actualiza los atributos mutables; identidad y SKU no cambian.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET product_name = $2, category = $3, unit = $4, unit_price = $5,
		    default_supplier_id = $6, updated_at = $7
		WHERE product_id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Unit,
		product.UnitPrice, product.DefaultSupplierID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
