package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de alertas. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta.
func (r *AlertRepo) Create(ctx context.Context, alert *entity.Alert) error {
	query := `
		INSERT INTO alerts (alert_id, branch_id, product_id, type, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		alert.ID, alert.BranchID, alert.ProductID, alert.Type, alert.Message, alert.IsRead, alert.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ListAll todas las alertas, más recientes primero.
func (r *AlertRepo) ListAll(ctx context.Context) ([]*entity.Alert, error) {
	query := `
		SELECT alert_id, branch_id, product_id, type, message, is_read, created_at
		FROM alerts ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListByBranch alertas de una sucursal, más recientes primero.
func (r *AlertRepo) ListByBranch(ctx context.Context, branchID string) ([]*entity.Alert, error) {
	query := `
		SELECT alert_id, branch_id, product_id, type, message, is_read, created_at
		FROM alerts WHERE branch_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, branchID)
}

// MarkRead marca la alerta como leída. El UPDATE matchea la fila aunque ya
// esté leída, así repetir la operación sigue siendo éxito (idempotente);
// cero filas solo ocurre cuando el id no existe.
func (r *AlertRepo) MarkRead(ctx context.Context, id string) error {
	query := `UPDATE alerts SET is_read = TRUE WHERE alert_id = $1`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la alerta; ErrNotFound si no existe.
func (r *AlertRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM alerts WHERE alert_id = $1`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AlertRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Alert, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.BranchID, &a.ProductID, &a.Type, &a.Message, &a.IsRead, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
