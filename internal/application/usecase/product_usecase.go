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

// ProductUseCase casos de uso CRUD para productos. Stock solo se modifica
// vía el motor de ventas (DecreaseStock).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El título es único por usuario.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: título requerido", domain.ErrInvalidInput)
	}
	if in.Stock < 0 || in.PurchasePrice.IsNegative() || in.Price.IsNegative() ||
		in.Price2.IsNegative() || in.Price3.IsNegative() || in.Price4.IsNegative() {
		return nil, fmt.Errorf("%w: stock y precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:            uuid.New().String(),
		UserID:        userID,
		CategoryID:    in.CategoryID,
		Title:         in.Title,
		Stock:         in.Stock,
		PurchasePrice: in.PurchasePrice,
		Price:         in.Price,
		Price2:        in.Price2,
		Price3:        in.Price3,
		Price4:        in.Price4,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByTerm busca por ID si el término es un UUID; si no, por título (parcial).
func (uc *ProductUseCase) GetByTerm(userID, term string) ([]*dto.ProductResponse, error) {
	if _, err := uuid.Parse(term); err == nil {
		product, err := uc.repo.GetByID(userID, term)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, term)
		}
		return []*dto.ProductResponse{toProductResponse(product)}, nil
	}
	products, err := uc.repo.SearchByTitle(userID, term)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: sin productos para el término %q", domain.ErrNotFound, term)
	}
	out := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, nil
}

// List lista productos del usuario con paginación.
func (uc *ProductUseCase) List(userID string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, nil
}

// Update actualiza título, categoría y precios. No toca Stock.
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %q", domain.ErrNotFound, id)
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: título vacío", domain.ErrInvalidInput)
		}
		product.Title = *in.Title
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Price2 != nil {
		product.Price2 = *in.Price2
	}
	if in.Price3 != nil {
		product.Price3 = *in.Price3
	}
	if in.Price4 != nil {
		product.Price4 = *in.Price4
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del usuario.
func (uc *ProductUseCase) Delete(userID, id string) error {
	product, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %q", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(userID, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Title:         p.Title,
		Stock:         p.Stock,
		PurchasePrice: p.PurchasePrice,
		Price:         p.Price,
		Price2:        p.Price2,
		Price3:        p.Price3,
		Price4:        p.Price4,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
