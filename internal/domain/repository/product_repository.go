package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// ProductListRow producto unido con el nombre de su proveedor habitual.
type ProductListRow struct {
	entity.Product
	SupplierName *string
}

// ProductRepository puerto sobre products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListAll(ctx context.Context) ([]ProductListRow, error)
	Update(ctx context.Context, product *entity.Product) error
}
