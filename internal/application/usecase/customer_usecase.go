package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente del usuario.
func (uc *CustomerUseCase) Create(userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del usuario.
func (uc *CustomerUseCase) GetByID(userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %q", domain.ErrNotFound, id)
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes del usuario con paginación.
func (uc *CustomerUseCase) List(userID string, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = toCustomerResponse(c)
	}
	return out, nil
}

// Delete elimina un cliente del usuario.
func (uc *CustomerUseCase) Delete(userID, id string) error {
	customer, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: cliente %q", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(userID, id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, CreatedAt: c.CreatedAt}
}
