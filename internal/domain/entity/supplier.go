package entity

import "time"

// Supplier proveedor de productos para órdenes de compra.
type Supplier struct {
	ID           string
	Name         string
	ContactName  string
	ContactPhone string
	Email        string
	CreatedAt    time.Time
}
