package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de ventas sobre PostgreSQL (usable con pool o tx).
// Solo-append: sin update ni delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de venta. created_at queda fijado en la inserción.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, user_id, customer_id, customer_name, product_id, product_title,
			quantity, unit_price, price_key, purchase_price_at_sale, status, employee, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.CustomerID, movement.CustomerName,
		movement.ProductID, movement.ProductTitle, movement.Quantity, movement.UnitPrice,
		movement.PriceKey, movement.PurchasePriceAtSale, movement.Status, movement.Employee,
		movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByUserInRange devuelve los movimientos del usuario con created_at en
// [startUTC, endUTC), ordenados por created_at ascendente.
func (r *MovementRepo) ListByUserInRange(userID string, startUTC, endUTC time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT id, user_id, customer_id, customer_name, product_id, product_title,
			quantity, unit_price, price_key, purchase_price_at_sale, status, employee, created_at
		FROM movements
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID, startUTC, endUTC)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.UserID, &m.CustomerID, &m.CustomerName,
			&m.ProductID, &m.ProductTitle, &m.Quantity, &m.UnitPrice,
			&m.PriceKey, &m.PurchasePriceAtSale, &m.Status, &m.Employee,
			&m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
