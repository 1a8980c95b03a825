package statistics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/application/statistics"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.Movement
	calls     int
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovementRepo) ListByUserInRange(userID string, startUTC, endUTC time.Time) ([]*entity.Movement, error) {
	f.calls++
	f.lastStart = startUTC
	f.lastEnd = endUTC
	var out []*entity.Movement
	for _, m := range f.movements {
		if m.UserID == userID && !m.CreatedAt.Before(startUTC) && m.CreatedAt.Before(endUTC) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCache struct {
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.data[key], nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.sets++
	c.data[key] = value
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "user-1"

func venta(createdAt time.Time, qty int, unitPrice, purchasePrice string) *entity.Movement {
	return &entity.Movement{
		ID:                  "mov-" + createdAt.Format("150405"),
		UserID:              testUserID,
		ProductID:           "prod-1",
		ProductTitle:        "Producto",
		Quantity:            qty,
		UnitPrice:           decimal.RequireFromString(unitPrice),
		PriceKey:            entity.PriceKey1,
		PurchasePriceAtSale: decimal.RequireFromString(purchasePrice),
		CreatedAt:           createdAt,
	}
}

func intPtr(n int) *int { return &n }

func reqDia(anchor string, tzOffset int) dto.StatisticsRequest {
	return dto.StatisticsRequest{Mode: "day", Anchor: anchor, TzOffset: intPtr(tzOffset)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetStatistics
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: agregación por hora local con totales de monto, ventas, productos
// y ganancia.
func TestGetStatistics_Dia_AgregaPorHora(t *testing.T) {
	repo := &fakeMovementRepo{movements: []*entity.Movement{
		venta(time.Date(2024, 3, 15, 9, 15, 0, 0, time.UTC), 2, "10", "6"),
		venta(time.Date(2024, 3, 15, 9, 45, 0, 0, time.UTC), 1, "20", "12"),
		venta(time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC), 3, "5", "2"),
	}}
	uc := statistics.NewUseCase(repo, nil)

	res, err := uc.GetStatistics(context.Background(), testUserID, reqDia("2024-03-15", 0))
	require.NoError(t, err)

	require.Len(t, res.Values, 24)
	assert.Equal(t, int64(40), res.Values[9], "dos ventas a las 09 suman 2*10 + 1*20")
	assert.Equal(t, int64(15), res.Values[18])
	assert.Equal(t, int64(55), res.TotalAmount)
	assert.Equal(t, int64(3), res.TotalSales)
	assert.Equal(t, int64(6), res.TotalProducts)
	assert.Equal(t, int64(25), res.TotalProfit, "ganancia = sum((unitario - compra) * cantidad)")
}

// Caso 2: el redondeo a entero ocurre una sola vez al final de la acumulación,
// no por registro. Tres ventas de 0.50 suman 1.50 → 2 (por registro daría 3).
func TestGetStatistics_RedondeoUnicoAlFinal(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeMovementRepo{movements: []*entity.Movement{
		venta(at, 1, "0.50", "0"),
		venta(at.Add(time.Minute), 1, "0.50", "0"),
		venta(at.Add(2*time.Minute), 1, "0.50", "0"),
	}}
	uc := statistics.NewUseCase(repo, nil)

	res, err := uc.GetStatistics(context.Background(), testUserID, reqDia("2024-03-15", 0))
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Values[10])
	assert.Equal(t, int64(2), res.TotalAmount)
}

// Caso 3: una venta a las 02:30 UTC no pertenece al día local en UTC-3
// (offset +180); la ventana consultada arranca a las 03:00 UTC.
func TestGetStatistics_OffsetHorario_ExcluyeFueraDeVentana(t *testing.T) {
	repo := &fakeMovementRepo{movements: []*entity.Movement{
		venta(time.Date(2024, 3, 15, 2, 30, 0, 0, time.UTC), 1, "100", "50"),
		venta(time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC), 1, "40", "20"),
	}}
	uc := statistics.NewUseCase(repo, nil)

	res, err := uc.GetStatistics(context.Background(), testUserID, reqDia("2024-03-15", 180))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC), repo.lastStart)
	assert.Equal(t, time.Date(2024, 3, 16, 3, 0, 0, 0, time.UTC), repo.lastEnd)

	assert.Equal(t, int64(1), res.TotalSales, "la venta de las 02:30 UTC es del día local anterior")
	assert.Equal(t, int64(40), res.TotalAmount)
	assert.Equal(t, int64(40), res.Values[12], "15:00 UTC es 12:00 local en UTC-3")
}

// Caso 4: cantidades negativas no restan; cuentan como venta pero aportan cero.
func TestGetStatistics_CantidadNegativaNoResta(t *testing.T) {
	repo := &fakeMovementRepo{movements: []*entity.Movement{
		venta(time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC), -5, "10", "5"),
	}}
	uc := statistics.NewUseCase(repo, nil)

	res, err := uc.GetStatistics(context.Background(), testUserID, reqDia("2024-03-15", 0))
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.TotalSales)
	assert.Equal(t, int64(0), res.TotalProducts)
	assert.Equal(t, int64(0), res.TotalAmount)
	assert.Equal(t, int64(0), res.TotalProfit)
}

// Caso 5: un rango sin ventas devuelve todas las etiquetas con ceros, no error.
func TestGetStatistics_RangoVacio(t *testing.T) {
	uc := statistics.NewUseCase(&fakeMovementRepo{}, nil)

	res, err := uc.GetStatistics(context.Background(), testUserID, dto.StatisticsRequest{Mode: "year", Anchor: "2024"})
	require.NoError(t, err)

	require.Len(t, res.Labels, 12)
	require.Len(t, res.Values, 12)
	for i, v := range res.Values {
		assert.Equal(t, int64(0), v, "bucket %d debe ser cero", i)
	}
	assert.Equal(t, int64(0), res.TotalSales)
}

// Caso 6: validación de entrada.
func TestGetStatistics_EntradasInvalidas(t *testing.T) {
	uc := statistics.NewUseCase(&fakeMovementRepo{}, nil)
	ctx := context.Background()

	_, err := uc.GetStatistics(ctx, testUserID, dto.StatisticsRequest{Anchor: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mode es requerido")

	_, err = uc.GetStatistics(ctx, testUserID, dto.StatisticsRequest{Mode: "day"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "anchor es requerido")

	_, err = uc.GetStatistics(ctx, testUserID, dto.StatisticsRequest{Mode: "quarter", Anchor: "2024-03-15"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "modo desconocido")

	_, err = uc.GetStatistics(ctx, testUserID, dto.StatisticsRequest{Mode: "day", Anchor: "2024-03-15", TzOffset: intPtr(900)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "offset fuera de ±14h")
}

// Caso 7: tzOffset ausente equivale a 0 (ventana UTC).
func TestGetStatistics_OffsetPorDefectoCero(t *testing.T) {
	repo := &fakeMovementRepo{}
	uc := statistics.NewUseCase(repo, nil)

	_, err := uc.GetStatistics(context.Background(), testUserID, dto.StatisticsRequest{Mode: "day", Anchor: "2024-03-15"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), repo.lastStart)
}

// Caso 8: con cache, la segunda consulta idéntica no vuelve a leer movimientos
// y devuelve el mismo resultado.
func TestGetStatistics_CacheEvitaSegundaLectura(t *testing.T) {
	repo := &fakeMovementRepo{movements: []*entity.Movement{
		venta(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 2, "10", "4"),
	}}
	cache := newFakeCache()
	uc := statistics.NewUseCase(repo, cache)
	ctx := context.Background()

	first, err := uc.GetStatistics(ctx, testUserID, reqDia("2024-03-15", 0))
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 1, cache.sets)

	second, err := uc.GetStatistics(ctx, testUserID, reqDia("2024-03-15", 0))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "la segunda lectura debe salir del cache")
	assert.Equal(t, first, second)
}
