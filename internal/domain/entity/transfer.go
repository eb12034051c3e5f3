package entity

import "time"

// Estados de una transferencia entre sucursales.
const (
	TransferStatusPending   = "Pending"
	TransferStatusApproved  = "Approved"
	TransferStatusRejected  = "Rejected"
	TransferStatusCompleted = "Completed"
)

// Transfer es una solicitud de mover stock de un producto entre dos sucursales.
// Nace en Pending; al pasar a Completed se descuenta en origen y se acredita
// en destino dentro de la misma transacción.
type Transfer struct {
	ID           string
	FromBranchID string
	ToBranchID   string
	ProductID    string
	Quantity     int
	TransferDate time.Time
	Status       string
	CreatedAt    time.Time
}
