package alerts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// EmitterUseCase CRUD de alertas. Las alertas las crea un caller explícito
// (o una política programada futura); el motor de ajustes no las dispara.
type EmitterUseCase struct {
	alertRepo repository.AlertRepository
}

// NewEmitterUseCase construye el emisor de alertas.
func NewEmitterUseCase(alertRepo repository.AlertRepository) *EmitterUseCase {
	return &EmitterUseCase{alertRepo: alertRepo}
}

// Create registra una alerta nueva (no leída) y devuelve su id.
func (uc *EmitterUseCase) Create(ctx context.Context, in dto.CreateAlertRequest) (string, error) {
	if in.BranchID == "" || in.Type == "" || in.Message == "" {
		return "", domain.ErrInvalidInput
	}
	alert := &entity.Alert{
		ID:        uuid.New().String(),
		BranchID:  in.BranchID,
		ProductID: in.ProductID,
		Type:      in.Type,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := uc.alertRepo.Create(ctx, alert); err != nil {
		return "", err
	}
	return alert.ID, nil
}

// ListAll todas las alertas de la cadena.
func (uc *EmitterUseCase) ListAll(ctx context.Context) ([]dto.AlertDTO, error) {
	list, err := uc.alertRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// ListByBranch alertas de una sucursal, más recientes primero.
func (uc *EmitterUseCase) ListByBranch(ctx context.Context, branchID string) ([]dto.AlertDTO, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.alertRepo.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return toDTOs(list), nil
}

// MarkRead marca la alerta como leída. Idempotente: repetirlo sobre una
// alerta ya leída sigue siendo éxito.
func (uc *EmitterUseCase) MarkRead(ctx context.Context, alertID string) error {
	if alertID == "" {
		return domain.ErrInvalidInput
	}
	return uc.alertRepo.MarkRead(ctx, alertID)
}

// Delete borra la alerta; ErrNotFound si el id no existe.
func (uc *EmitterUseCase) Delete(ctx context.Context, alertID string) error {
	if alertID == "" {
		return domain.ErrInvalidInput
	}
	return uc.alertRepo.Delete(ctx, alertID)
}

func toDTOs(alerts []*entity.Alert) []dto.AlertDTO {
	out := make([]dto.AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.AlertDTO{
			AlertID:   a.ID,
			BranchID:  a.BranchID,
			ProductID: a.ProductID,
			Type:      a.Type,
			Message:   a.Message,
			IsRead:    a.IsRead,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}
