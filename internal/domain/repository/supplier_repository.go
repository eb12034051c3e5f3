package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// SupplierRepository puerto sobre suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	ListAll(ctx context.Context) ([]*entity.Supplier, error)
}
