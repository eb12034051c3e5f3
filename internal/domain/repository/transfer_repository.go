package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// TransferRepository puerto sobre inter_branch_transfers.
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	// GetForUpdate lee la transferencia bloqueando la fila (SELECT FOR UPDATE)
	// para que dos completados concurrentes no dupliquen el movimiento.
	GetForUpdate(ctx context.Context, id string) (*entity.Transfer, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListAll(ctx context.Context) ([]*entity.Transfer, error)
	ListByBranch(ctx context.Context, branchID string) ([]*entity.Transfer, error)
}
