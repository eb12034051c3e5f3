package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// SaleRepository puerto sobre la tabla sales (append-only).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	ListByBranch(ctx context.Context, branchID string) ([]*entity.Sale, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.Sale, error)
}
