package inventory

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de inventario atado a esa tx. Garantiza que el ajuste sea una
// unidad de trabajo con Commit/Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error
}
