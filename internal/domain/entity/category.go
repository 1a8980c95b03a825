package entity

import "time"

// Category agrupa productos dentro del catálogo de un usuario.
type Category struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}
