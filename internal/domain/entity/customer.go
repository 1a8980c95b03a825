package entity

import "time"

// Customer es un cliente del usuario; su nombre se denormaliza en cada venta.
type Customer struct {
	ID        string
	UserID    string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
}
