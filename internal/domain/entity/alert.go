package entity

import "time"

// Alert es una notificación registrada por un caller (por ejemplo al detectar
// stock bajo). El motor de ajustes no las emite automáticamente. Solo muta el
// flag IsRead; puede borrarse.
type Alert struct {
	ID        string
	BranchID  string
	ProductID *string // opcional: alerta general de sucursal si es nil
	Type      string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
