package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claves de precio permitidas en una venta (cuatro niveles por producto).
const (
	PriceKey1 = 1
	PriceKey2 = 2
	PriceKey3 = 3
	PriceKey4 = 4
)

// ValidPriceKey indica si la clave corresponde a uno de los cuatro niveles.
func ValidPriceKey(key int) bool {
	return key >= PriceKey1 && key <= PriceKey4
}

// Product representa un producto del catálogo de un usuario.
// Stock solo se modifica vía el motor de ventas (DecreaseStock); Title es único por usuario.
type Product struct {
	ID            string
	UserID        string
	CategoryID    string
	Title         string
	Stock         int             // nunca negativo, protegido por bloqueo de fila
	PurchasePrice decimal.Decimal // costo de compra, snapshot en cada venta
	Price         decimal.Decimal // nivel 1
	Price2        decimal.Decimal
	Price3        decimal.Decimal
	Price4        decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
