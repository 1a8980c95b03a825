package inventory

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ventas:
// si fn devuelve error no queda ningún efecto parcial (rollback), y el bloqueo
// de fila tomado con GetForUpdate vive hasta Commit o Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error) error
}
