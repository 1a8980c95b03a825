package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(userID, id string) (*entity.Category, error)
	ListByUser(userID string) ([]*entity.Category, error)
	Delete(userID, id string) error
}
