package entity

import "time"

// User dueño de catálogo, clientes y ventas.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsActive     bool
	CreatedAt    time.Time
}
