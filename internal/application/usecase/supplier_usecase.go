package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// SupplierUseCase administración de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create registra un proveedor nuevo y devuelve su id.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (string, error) {
	if in.Name == "" {
		return "", domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		Email:        in.Email,
		CreatedAt:    time.Now(),
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return "", err
	}
	return supplier.ID, nil
}

// List todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierDTO, error) {
	suppliers, err := uc.supplierRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierDTO{
			SupplierID:   s.ID,
			Name:         s.Name,
			ContactName:  s.ContactName,
			ContactPhone: s.ContactPhone,
			Email:        s.Email,
		})
	}
	return out, nil
}
