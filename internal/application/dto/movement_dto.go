package dto

import "github.com/shopspring/decimal"

// DecreaseStockRequest body para POST /api/products/:id/decrease-stock.
// Registra una venta: descuenta stock y crea el movimiento en una sola transacción.
type DecreaseStockRequest struct {
	Quantity     int             `json:"quantity"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	PriceKey     int             `json:"price_key"`
}
