package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// DecreaseStockUseCase registra ventas de forma transaccional: descuenta stock
// con bloqueo de fila (SELECT FOR UPDATE) y crea el movimiento en la misma
// transacción. Dos ventas concurrentes del mismo producto se serializan; la
// segunda relee el stock ya actualizado al soltarse el bloqueo.
type DecreaseStockUseCase struct {
	txRunner TxRunner
}

// NewDecreaseStockUseCase construye el caso de uso.
func NewDecreaseStockUseCase(txRunner TxRunner) *DecreaseStockUseCase {
	return &DecreaseStockUseCase{txRunner: txRunner}
}

// SaleInputDTO entrada para registrar una venta.
type SaleInputDTO struct {
	UserID       string
	ProductID    string
	CustomerID   string
	CustomerName string
	Quantity     int
	UnitPrice    decimal.Decimal
	PriceKey     int
}

// DecreaseStock ejecuta la unidad de trabajo atómica: lee el producto bajo
// bloqueo exclusivo, verifica propiedad y suficiencia, descuenta stock e
// inserta el movimiento con los snapshots tomados bajo el mismo bloqueo
// (ProductTitle y PurchasePriceAtSale). Devuelve el producto actualizado.
//
// No es idempotente: cada llamada exitosa crea un movimiento nuevo.
func (uc *DecreaseStockUseCase) DecreaseStock(ctx context.Context, input SaleInputDTO) (*entity.Product, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if !entity.ValidPriceKey(input.PriceKey) {
		return nil, fmt.Errorf("%w: priceKey debe estar entre 1 y 4", domain.ErrInvalidInput)
	}
	if input.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	if input.ProductID == "" || input.CustomerID == "" {
		return nil, fmt.Errorf("%w: producto y cliente son requeridos", domain.ErrInvalidInput)
	}

	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.UserID, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %q no existe o no pertenece al usuario", domain.ErrNotFound, input.ProductID)
		}
		if product.Stock < input.Quantity {
			return fmt.Errorf("%w para %q: stock %d, pedido %d",
				domain.ErrInsufficientStock, product.Title, product.Stock, input.Quantity)
		}

		// 1) Descontar stock (la fila sigue bloqueada hasta el commit)
		product.Stock -= input.Quantity
		if err := productRepo.UpdateStock(product.ID, product.Stock); err != nil {
			return err
		}

		// 2) Registrar el movimiento con snapshots leídos bajo el bloqueo
		movement := &entity.Movement{
			ID:                  uuid.New().String(),
			UserID:              input.UserID,
			CustomerID:          input.CustomerID,
			CustomerName:        input.CustomerName,
			ProductID:           product.ID,
			ProductTitle:        product.Title,
			Quantity:            input.Quantity,
			UnitPrice:           input.UnitPrice,
			PriceKey:            input.PriceKey,
			PurchasePriceAtSale: product.PurchasePrice,
			CreatedAt:           time.Now().UTC(),
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
