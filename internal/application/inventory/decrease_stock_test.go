package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/application/inventory"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: TxRunner serializado + repos sobre un store compartido.
// El mutex del runner emula la serialización que da SELECT FOR UPDATE y el
// snapshot del store emula el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.Movement
	runCalls  int
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *memStore) product(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.products[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.runCalls++

	// Snapshot para simular rollback si fn falla.
	backup := make(map[string]*entity.Product, len(r.store.products))
	for id, p := range r.store.products {
		cp := *p
		backup[id] = &cp
	}
	movLen := len(r.store.movements)

	err := fn(&fakeProductRepo{store: r.store}, &fakeMovementRepo{store: r.store})
	if err != nil {
		r.store.products = backup
		r.store.movements = r.store.movements[:movLen]
	}
	return err
}

// fakeProductRepo opera sobre el store ya bloqueado por el runner.
type fakeProductRepo struct {
	store *memStore
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.store.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(userID, id string) (*entity.Product, error) {
	return f.GetForUpdate(userID, id)
}

func (f *fakeProductRepo) GetForUpdate(userID, id string) (*entity.Product, error) {
	p, ok := f.store.products[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.store.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := f.store.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (f *fakeProductRepo) ListByUser(userID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) SearchByTitle(userID, term string) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(userID, id string) error {
	delete(f.store.products, id)
	return nil
}

type fakeMovementRepo struct {
	store *memStore
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	f.store.movements = append(f.store.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) ListByUserInRange(userID string, startUTC, endUTC time.Time) ([]*entity.Movement, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID    = "user-1"
	testProductID = "prod-1"
)

func productoBase(stock int) *entity.Product {
	return &entity.Product{
		ID:            testProductID,
		UserID:        testUserID,
		Title:         "Café molido 500g",
		Stock:         stock,
		PurchasePrice: decimal.RequireFromString("8.50"),
		Price:         decimal.RequireFromString("12.90"),
	}
}

func ventaBase(qty int) inventory.SaleInputDTO {
	return inventory.SaleInputDTO{
		UserID:       testUserID,
		ProductID:    testProductID,
		CustomerID:   "cust-1",
		CustomerName: "Cliente de Prueba",
		Quantity:     qty,
		UnitPrice:    decimal.RequireFromString("12.90"),
		PriceKey:     entity.PriceKey1,
	}
}

func buildUseCase(store *memStore) *inventory.DecreaseStockUseCase {
	return inventory.NewDecreaseStockUseCase(&fakeTxRunner{store: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DecreaseStock
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: venta exitosa → descuenta stock y registra el movimiento con los
// snapshots tomados bajo el bloqueo (título y precio de compra).
func TestDecreaseStock_Exitoso(t *testing.T) {
	store := newMemStore(productoBase(10))
	uc := buildUseCase(store)

	updated, err := uc.DecreaseStock(context.Background(), ventaBase(3))
	require.NoError(t, err)

	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, 7, store.product(testProductID).Stock)

	require.Equal(t, 1, store.movementCount())
	mov := store.movements[0]
	assert.Equal(t, testUserID, mov.UserID)
	assert.Equal(t, testProductID, mov.ProductID)
	assert.Equal(t, "Café molido 500g", mov.ProductTitle, "el título se congela al momento de la venta")
	assert.True(t, mov.PurchasePriceAtSale.Equal(decimal.RequireFromString("8.50")),
		"el precio de compra se congela al momento de la venta")
	assert.Equal(t, 3, mov.Quantity)
	assert.NotEmpty(t, mov.ID)
	assert.False(t, mov.CreatedAt.IsZero())
}

// Caso 2: vender exactamente todo el stock deja stock en cero (válido).
func TestDecreaseStock_StockExacto(t *testing.T) {
	store := newMemStore(productoBase(5))
	uc := buildUseCase(store)

	updated, err := uc.DecreaseStock(context.Background(), ventaBase(5))
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)
}

// Caso 3: stock insuficiente → ErrInsufficientStock con stock y pedido en el
// mensaje; sin efecto parcial (stock intacto, sin movimiento).
func TestDecreaseStock_StockInsuficiente(t *testing.T) {
	store := newMemStore(productoBase(5))
	uc := buildUseCase(store)

	_, err := uc.DecreaseStock(context.Background(), ventaBase(6))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "stock 5")
	assert.Contains(t, err.Error(), "pedido 6")

	assert.Equal(t, 5, store.product(testProductID).Stock, "el stock no debe cambiar")
	assert.Equal(t, 0, store.movementCount(), "no debe registrarse movimiento")
}

// Caso 4: producto inexistente o de otro usuario → ErrNotFound.
func TestDecreaseStock_ProductoNoEncontrado(t *testing.T) {
	store := newMemStore(productoBase(10))
	uc := buildUseCase(store)

	in := ventaBase(1)
	in.ProductID = "prod-ajeno"
	_, err := uc.DecreaseStock(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in = ventaBase(1)
	in.UserID = "otro-usuario"
	_, err = uc.DecreaseStock(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound, "un producto de otro usuario equivale a inexistente")
}

// Caso 5: entradas inválidas se rechazan antes de abrir la transacción.
func TestDecreaseStock_EntradasInvalidas(t *testing.T) {
	casos := []struct {
		nombre string
		mutar  func(*inventory.SaleInputDTO)
	}{
		{"cantidad cero", func(in *inventory.SaleInputDTO) { in.Quantity = 0 }},
		{"cantidad negativa", func(in *inventory.SaleInputDTO) { in.Quantity = -2 }},
		{"priceKey fuera de rango", func(in *inventory.SaleInputDTO) { in.PriceKey = 5 }},
		{"precio negativo", func(in *inventory.SaleInputDTO) { in.UnitPrice = decimal.RequireFromString("-1") }},
		{"sin cliente", func(in *inventory.SaleInputDTO) { in.CustomerID = "" }},
		{"sin producto", func(in *inventory.SaleInputDTO) { in.ProductID = "" }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			store := newMemStore(productoBase(10))
			uc := buildUseCase(store)

			in := ventaBase(1)
			c.mutar(&in)
			_, err := uc.DecreaseStock(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, store.runCalls, "la validación debe fallar antes de la transacción")
		})
	}
}

// Caso 6: ventas concurrentes del mismo producto se serializan. El stock final
// nunca es negativo y cada venta exitosa dejó exactamente un movimiento.
func TestDecreaseStock_Concurrencia(t *testing.T) {
	const (
		stockInicial = 100
		vendedores   = 50
		porVenta     = 3
	)
	store := newMemStore(productoBase(stockInicial))
	uc := buildUseCase(store)

	var wg sync.WaitGroup
	var exitosMu sync.Mutex
	exitos := 0

	for i := 0; i < vendedores; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.DecreaseStock(context.Background(), ventaBase(porVenta))
			if err == nil {
				exitosMu.Lock()
				exitos++
				exitosMu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			}
		}()
	}
	wg.Wait()

	final := store.product(testProductID).Stock
	assert.GreaterOrEqual(t, final, 0, "el stock nunca puede quedar negativo")
	assert.Equal(t, stockInicial-porVenta*exitos, final,
		"cada venta exitosa descuenta exactamente su cantidad")
	assert.Equal(t, exitos, store.movementCount(),
		"una venta exitosa = un movimiento en el libro")
	assert.Equal(t, 33, exitos, "con 100 de stock y ventas de 3 caben 33 ventas")
}
