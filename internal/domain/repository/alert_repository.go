package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// AlertRepository puerto sobre alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	ListAll(ctx context.Context) ([]*entity.Alert, error)
	ListByBranch(ctx context.Context, branchID string) ([]*entity.Alert, error)
	// MarkRead es idempotente: marcar una alerta ya leída vuelve a ser éxito.
	// Devuelve domain.ErrNotFound si el id no existe.
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
