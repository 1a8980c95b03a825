package repository

import (
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de ventas.
// Solo-append: no hay update ni delete de movimientos.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByUserInRange devuelve los movimientos con created_at en [startUTC, endUTC),
	// ordenados por created_at ascendente.
	ListByUserInRange(userID string, startUTC, endUTC time.Time) ([]*entity.Movement, error)
}
