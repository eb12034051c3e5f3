package transfer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repos de transferencias e inventario atados
// a la misma transacción. El cambio de estado, el débito en origen y el
// crédito en destino se confirman o se revierten juntos.
type TxRunner interface {
	RunTransfer(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		transferRepo repository.TransferRepository,
	) error) error
}

// WorkflowUseCase máquina de estados de transferencias entre sucursales:
// Pending -> Approved | Rejected | Completed, y Approved -> Completed.
// Solo el paso a Completed toca inventario. Re-completar una transferencia ya
// completada se rechaza con ErrConflict para no duplicar el movimiento.
type WorkflowUseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository // lecturas fuera de transacción
}

// NewWorkflowUseCase construye el flujo de transferencias.
func NewWorkflowUseCase(txRunner TxRunner, transferRepo repository.TransferRepository) *WorkflowUseCase {
	return &WorkflowUseCase{txRunner: txRunner, transferRepo: transferRepo}
}

// Create inserta una transferencia en Pending y devuelve su id.
func (uc *WorkflowUseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (string, error) {
	if in.FromBranchID == "" || in.ToBranchID == "" || in.ProductID == "" {
		return "", domain.ErrInvalidInput
	}
	if in.FromBranchID == in.ToBranchID || in.Quantity <= 0 {
		return "", domain.ErrInvalidInput
	}
	transferDate, err := time.Parse("2006-01-02", in.TransferDate)
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	t := &entity.Transfer{
		ID:           uuid.New().String(),
		FromBranchID: in.FromBranchID,
		ToBranchID:   in.ToBranchID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		TransferDate: transferDate,
		Status:       entity.TransferStatusPending,
		CreatedAt:    time.Now(),
	}
	if err := uc.transferRepo.Create(ctx, t); err != nil {
		return "", err
	}
	return t.ID, nil
}

// SetStatus transiciona la transferencia al estado pedido. Si y solo si el
// nuevo estado es Completed, además debita la sucursal origen y acredita la
// destino; las tres mutaciones van en una sola transacción y cualquier fallo
// (por ejemplo inventario inexistente en destino) revierte también el débito.
func (uc *WorkflowUseCase) SetStatus(ctx context.Context, transferID, status string) error {
	if transferID == "" {
		return domain.ErrInvalidInput
	}
	switch status {
	case entity.TransferStatusApproved, entity.TransferStatusRejected, entity.TransferStatusCompleted:
	default:
		return domain.ErrInvalidStatus
	}

	return uc.txRunner.RunTransfer(ctx, func(
		invRepo repository.InventoryRepository,
		transferRepo repository.TransferRepository,
	) error {
		t, err := transferRepo.GetForUpdate(ctx, transferID)
		if err != nil {
			return err
		}
		if !transitionAllowed(t.Status, status) {
			return domain.ErrConflict
		}
		if err := transferRepo.UpdateStatus(ctx, transferID, status); err != nil {
			return err
		}
		if status != entity.TransferStatusCompleted {
			return nil
		}
		if err := invRepo.ApplyDelta(ctx, t.FromBranchID, t.ProductID, -t.Quantity); err != nil {
			return err
		}
		return invRepo.ApplyDelta(ctx, t.ToBranchID, t.ProductID, t.Quantity)
	})
}

// transitionAllowed tabla de transiciones válidas. Approved puede completarse;
// Rejected y Completed son terminales.
func transitionAllowed(from, to string) bool {
	switch from {
	case entity.TransferStatusPending:
		return to == entity.TransferStatusApproved ||
			to == entity.TransferStatusRejected ||
			to == entity.TransferStatusCompleted
	case entity.TransferStatusApproved:
		return to == entity.TransferStatusCompleted
	default:
		return false
	}
}

// ListAll transferencias de toda la cadena, por fecha descendente.
func (uc *WorkflowUseCase) ListAll(ctx context.Context) ([]dto.TransferDTO, error) {
	transfers, err := uc.transferRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(transfers), nil
}

// ListByBranch transferencias donde la sucursal es origen o destino.
func (uc *WorkflowUseCase) ListByBranch(ctx context.Context, branchID string) ([]dto.TransferDTO, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	transfers, err := uc.transferRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return toDTOs(transfers), nil
}

func toDTOs(transfers []*entity.Transfer) []dto.TransferDTO {
	out := make([]dto.TransferDTO, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.TransferDTO{
			TransferID:   t.ID,
			FromBranchID: t.FromBranchID,
			ToBranchID:   t.ToBranchID,
			ProductID:    t.ProductID,
			Quantity:     t.Quantity,
			TransferDate: t.TransferDate,
			Status:       t.Status,
		})
	}
	return out
}
