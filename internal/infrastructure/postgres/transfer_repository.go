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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de transferencias. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste una transferencia nueva (estado Pending).
func (r *TransferRepo) Create(ctx context.Context, transfer *entity.Transfer) error {
	query := `
		INSERT INTO inter_branch_transfers
			(transfer_id, from_branch_id, to_branch_id, product_id, quantity, transfer_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		transfer.ID, transfer.FromBranchID, transfer.ToBranchID, transfer.ProductID,
		transfer.Quantity, transfer.TransferDate, transfer.Status, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetForUpdate lee la transferencia bloqueando la fila (SELECT FOR UPDATE):
// dos completados concurrentes del mismo id se serializan aquí.
func (r *TransferRepo) GetForUpdate(ctx context.Context, id string) (*entity.Transfer, error) {
	query := `
		SELECT transfer_id, from_branch_id, to_branch_id, product_id, quantity, transfer_date, status, created_at
		FROM inter_branch_transfers WHERE transfer_id = $1
		FOR UPDATE`
	var t entity.Transfer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.FromBranchID, &t.ToBranchID, &t.ProductID,
		&t.Quantity, &t.TransferDate, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get transfer for update: %w", err)
	}
	return &t, nil
}

// UpdateStatus sobreescribe el estado de la transferencia.
func (r *TransferRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE inter_branch_transfers SET status = $1 WHERE transfer_id = $2`
	cmd, err := r.q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll transferencias por fecha descendente.
func (r *TransferRepo) ListAll(ctx context.Context) ([]*entity.Transfer, error) {
	query := `
		SELECT transfer_id, from_branch_id, to_branch_id, product_id, quantity, transfer_date, status, created_at
		FROM inter_branch_transfers ORDER BY transfer_date DESC`
	return r.list(ctx, query)
}

// ListByBranch transferencias donde la sucursal es origen o destino.
func (r *TransferRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.Transfer, error) {
	query := `
		SELECT transfer_id, from_branch_id, to_branch_id, product_id, quantity, transfer_date, status, created_at
		FROM inter_branch_transfers
		WHERE from_branch_id = $1 OR to_branch_id = $1`
	return r.list(ctx, query, branchID)
}

func (r *TransferRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Transfer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(
			&t.ID, &t.FromBranchID, &t.ToBranchID, &t.ProductID,
			&t.Quantity, &t.TransferDate, &t.Status, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
