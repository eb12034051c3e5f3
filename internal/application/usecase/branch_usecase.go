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

// BranchUseCase administración de sucursales (fuera del núcleo de inventario).
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create registra una sucursal nueva y devuelve su id.
func (uc *BranchUseCase) Create(ctx context.Context, in dto.CreateBranchRequest) (string, error) {
	if in.Name == "" {
		return "", domain.ErrInvalidInput
	}
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		CreatedAt: time.Now(),
	}
	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return "", err
	}
	return branch.ID, nil
}

// List todas las sucursales.
func (uc *BranchUseCase) List(ctx context.Context) ([]dto.BranchDTO, error) {
	branches, err := uc.branchRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchDTO, 0, len(branches))
	for _, b := range branches {
		out = append(out, dto.BranchDTO{
			BranchID: b.ID,
			Name:     b.Name,
			Address:  b.Address,
			Phone:    b.Phone,
		})
	}
	return out, nil
}
