package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/purchasing"
	"github.com/jhoicas/Sucursales-api/internal/application/sales"
	"github.com/jhoicas/Sucursales-api/internal/application/transfer"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// El runner implementa los puertos transaccionales de cada flujo.
var (
	_ inventory.TxRunner  = (*TxRunner)(nil)
	_ sales.TxRunner      = (*TxRunner)(nil)
	_ transfer.TxRunner   = (*TxRunner)(nil)
	_ purchasing.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, pasando
// repositorios atados a esa tx. Commit si el callback devuelve nil, Rollback
// en cualquier otro caso.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run transacción para ajustes directos de inventario.
func (r *TxRunner) Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewInventoryRepository(q))
	})
}

// RunSale transacción para registrar venta + descuento de stock.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewInventoryRepository(q), NewSaleRepository(q))
	})
}

// RunTransfer transacción para cambio de estado + débito/crédito de la
// transferencia.
func (r *TxRunner) RunTransfer(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	transferRepo repository.TransferRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewInventoryRepository(q), NewTransferRepository(q))
	})
}

// RunPurchase transacción para cabecera+líneas de orden de compra y para la
// recepción con crédito de stock.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewInventoryRepository(q), NewPurchaseOrderRepository(q))
	})
}
