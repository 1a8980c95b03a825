package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Title         string           `json:"title"`
	CategoryID    string           `json:"category_id"`
	Stock         int              `json:"stock"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	Price         decimal.Decimal  `json:"price"`
	Price2        decimal.Decimal  `json:"price2"`
	Price3        decimal.Decimal  `json:"price3"`
	Price4        decimal.Decimal  `json:"price4"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil = sin cambio.
// Stock no se actualiza aquí: solo vía el motor de ventas.
type UpdateProductRequest struct {
	Title         *string          `json:"title,omitempty"`
	CategoryID    *string          `json:"category_id,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Price2        *decimal.Decimal `json:"price2,omitempty"`
	Price3        *decimal.Decimal `json:"price3,omitempty"`
	Price4        *decimal.Decimal `json:"price4,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	CategoryID    string          `json:"category_id"`
	Title         string          `json:"title"`
	Stock         int             `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Price         decimal.Decimal `json:"price"`
	Price2        decimal.Decimal `json:"price2"`
	Price3        decimal.Decimal `json:"price3"`
	Price4        decimal.Decimal `json:"price4"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
