package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, user_id, category_id, title, stock, purchase_price, price, price2, price3, price4, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Título único por usuario (23505 -> ErrDuplicate).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.UserID, product.CategoryID, product.Title, product.Stock,
		product.PurchasePrice, product.Price, product.Price2, product.Price3, product.Price4,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del usuario. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(userID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND id = $2`
	return r.scanOne(query, userID, id)
}

// GetForUpdate obtiene un producto del usuario bloqueando la fila (SELECT FOR UPDATE).
// El bloqueo vive hasta el final de la transacción; llamar siempre dentro del TxRunner.
func (r *ProductRepo) GetForUpdate(userID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND id = $2 FOR UPDATE`
	return r.scanOne(query, userID, id)
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.UserID, &p.CategoryID, &p.Title, &p.Stock,
		&p.PurchasePrice, &p.Price, &p.Price2, &p.Price3, &p.Price4,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto (no toca stock; eso va por UpdateStock bajo bloqueo).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $3, title = $4, purchase_price = $5, price = $6, price2 = $7, price3 = $8, price4 = $9, updated_at = $10
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.UserID, product.ID, product.CategoryID, product.Title,
		product.PurchasePrice, product.Price, product.Price2, product.Price3, product.Price4,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock escribe solo el stock (lo usa el motor de ventas bajo bloqueo de fila).
func (r *ProductRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByUser lista productos del usuario con paginación.
func (r *ProductRepo) ListByUser(userID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchByTitle busca productos del usuario por título parcial (case-insensitive).
func (r *ProductRepo) SearchByTitle(userID, term string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND UPPER(title) LIKE $2 ORDER BY title`
	rows, err := r.q.Query(context.Background(), query, userID, "%"+strings.ToUpper(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina un producto del usuario.
func (r *ProductRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.CategoryID, &p.Title, &p.Stock,
			&p.PurchasePrice, &p.Price, &p.Price2, &p.Price3, &p.Price4,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
