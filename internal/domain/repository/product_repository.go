package repository

import "github.com/tu-usuario/ventas-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el producto no existe para ese usuario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(userID, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// El bloqueo vive hasta que termina la transacción que envuelve la llamada.
	GetForUpdate(userID, id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock escribe solo el stock (lo usa el motor de ventas bajo bloqueo).
	UpdateStock(id string, stock int) error
	ListByUser(userID string, limit, offset int) ([]*entity.Product, error)
	SearchByTitle(userID, term string) ([]*entity.Product, error)
	Delete(userID, id string) error
}
