package entity

import "time"

// Branch es una sucursal física de la cadena, con su propio inventario.
type Branch struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}
