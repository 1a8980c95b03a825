// Package statistics implementa el agregador de ventas por ventana de tiempo:
// valida la petición, resuelve la ventana UTC según el modo, lee los
// movimientos del rango y los acumula en buckets de calendario local.
package statistics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
	"github.com/tu-usuario/ventas-pro/internal/domain/stats"
)

// Cache puerto opcional para cachear respuestas de estadísticas (lectura pura,
// TTL corto). Nil desactiva el cacheo. Con cache activo una respuesta puede
// rezagarse hasta cacheTTL respecto de ventas recién registradas: registrar una
// venta no invalida entradas ya cacheadas.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

const cacheTTL = 60 * time.Second

// UseCase agregador de estadísticas (solo lectura, idempotente).
type UseCase struct {
	movRepo repository.MovementRepository
	cache   Cache
}

// NewUseCase construye el agregador. cache puede ser nil.
func NewUseCase(movRepo repository.MovementRepository, cache Cache) *UseCase {
	return &UseCase{movRepo: movRepo, cache: cache}
}

// GetStatistics calcula la ventana [startUTC, endUTC) para mode+anchor+offset,
// lee los movimientos del usuario en ese rango y los acumula por bucket.
// Montos y ganancia se acumulan como decimales exactos y se redondean a entero
// una sola vez al final, nunca por registro. Un rango sin ventas devuelve
// etiquetas con valores en cero, no un error.
func (uc *UseCase) GetStatistics(ctx context.Context, userID string, in dto.StatisticsRequest) (*dto.StatisticsResponse, error) {
	if in.Mode == "" {
		return nil, fmt.Errorf("%w: mode es requerido", domain.ErrInvalidInput)
	}
	if in.Anchor == "" {
		return nil, fmt.Errorf("%w: anchor es requerido", domain.ErrInvalidInput)
	}
	tzOffset := 0
	if in.TzOffset != nil {
		tzOffset = *in.TzOffset
	}

	mode := stats.Mode(in.Mode)
	tf, err := stats.Resolve(mode, in.Anchor, tzOffset)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("stats:%s:%s:%s:%d", userID, in.Mode, in.Anchor, tzOffset)
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, cacheKey); err == nil && raw != nil {
			var cached dto.StatisticsResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	movements, err := uc.movRepo.ListByUserInRange(userID, tf.StartUTC, tf.EndUTC)
	if err != nil {
		return nil, fmt.Errorf("estadísticas: leer movimientos: %w", err)
	}

	values := make([]decimal.Decimal, len(tf.Labels))
	var (
		totalAmount   decimal.Decimal
		totalProfit   decimal.Decimal
		totalSales    int64
		totalProducts int64
	)

	for _, m := range movements {
		qty := m.Quantity
		if qty < 0 {
			qty = 0
		}
		qtyDec := decimal.NewFromInt(int64(qty))

		amount := m.UnitPrice.Mul(qtyDec)
		profit := m.UnitPrice.Sub(m.PurchasePriceAtSale).Mul(qtyDec)

		totalAmount = totalAmount.Add(amount)
		totalProfit = totalProfit.Add(profit)
		totalSales++
		totalProducts += int64(qty)

		if idx := stats.BucketIndex(mode, m.CreatedAt, tf.StartUTC, tzOffset); idx >= 0 && idx < len(values) {
			values[idx] = values[idx].Add(amount)
		}
	}

	// Redondeo único al final de toda la acumulación.
	rounded := make([]int64, len(values))
	for i, v := range values {
		rounded[i] = v.Round(0).IntPart()
	}

	resp := &dto.StatisticsResponse{
		Labels:        tf.Labels,
		Values:        rounded,
		TotalAmount:   totalAmount.Round(0).IntPart(),
		TotalSales:    totalSales,
		TotalProfit:   totalProfit.Round(0).IntPart(),
		TotalProducts: totalProducts,
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			_ = uc.cache.Set(ctx, cacheKey, raw, cacheTTL)
		}
	}
	return resp, nil
}
