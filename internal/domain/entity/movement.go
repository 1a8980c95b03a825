package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement es el registro inmutable de una venta (libro mayor, solo-append).
// Se crea únicamente junto al descuento de stock, dentro de la misma transacción,
// y nunca se actualiza ni se borra. ProductTitle y PurchasePriceAtSale son
// snapshots: el producto puede cambiar después sin afectar el histórico.
type Movement struct {
	ID                  string
	UserID              string
	CustomerID          string
	CustomerName        string // snapshot del nombre del cliente
	ProductID           string
	ProductTitle        string // snapshot del título del producto
	Quantity            int
	UnitPrice           decimal.Decimal
	PriceKey            int             // 1..4, nivel de precio aplicado
	PurchasePriceAtSale decimal.Decimal // costo del producto al momento de la venta
	Status              *string
	Employee            *string
	CreatedAt           time.Time // instante UTC, fijado al insertar
}
