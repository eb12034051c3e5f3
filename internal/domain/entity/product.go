package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la cadena.
// La identidad (ID) es inmutable; los atributos se editan vía administración.
// El stock no vive aquí: se maneja por sucursal en InventoryRecord.
type Product struct {
	ID                string
	Name              string
	SKU               string // código único en toda la cadena
	Category          string
	Unit              string // unidad de venta: pcs, kg, caja...
	UnitPrice         decimal.Decimal
	DefaultSupplierID *string // proveedor habitual, opcional
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
