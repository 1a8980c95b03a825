package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(userID, id string) (*entity.Customer, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Customer, error)
	Delete(userID, id string) error
}
