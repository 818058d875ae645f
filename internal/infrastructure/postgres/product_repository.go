package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. La unicidad case-insensitive del nombre
// la respalda el índice único sobre LOWER(product_name): un 23505 aquí cubre
// la carrera que el chequeo previo del usecase no puede cerrar.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, product_name, category_id, quantity, reorder_level, price, maximum_discounted_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ProductName, product.CategoryID,
		product.Quantity, product.ReorderLevel, product.Price, product.MaximumDiscountedPrice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// GetByID obtiene un producto por ID, sin resolver la categoría (igual que la
// lectura individual del sistema original). ID inexistente o malformado -> (nil, nil).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, product_name, category_id, quantity, reorder_level, price, maximum_discounted_price
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductName, &p.CategoryID, &p.Quantity, &p.ReorderLevel, &p.Price, &p.MaximumDiscountedPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w: %w", domain.ErrUnavailable, err)
	}
	return &p, nil
}

// GetByName obtiene un producto por nombre exacto ignorando mayúsculas/minúsculas.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT id, product_name, category_id, quantity, reorder_level, price, maximum_discounted_price
		FROM products WHERE LOWER(product_name) = LOWER($1)`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&p.ID, &p.ProductName, &p.CategoryID, &p.Quantity, &p.ReorderLevel, &p.Price, &p.MaximumDiscountedPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w: %w", domain.ErrUnavailable, err)
	}
	return &p, nil
}

// List devuelve todos los productos con el nombre de la categoría resuelto (JOIN).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.product_name, p.category_id, c.category_name, p.quantity, p.reorder_level, p.price, p.maximum_discounted_price
		FROM products p
		JOIN categories c ON c.id = p.category_id`
	return r.queryResolved(query)
}

// SearchByName busca por substring case-insensitive sobre product_name.
// La entrada se escapa antes de armar el patrón ILIKE.
func (r *ProductRepo) SearchByName(q string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.product_name, p.category_id, c.category_name, p.quantity, p.reorder_level, p.price, p.maximum_discounted_price
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.product_name ILIKE '%' || $1 || '%'`
	return r.queryResolved(query, escapeLike(q))
}

func (r *ProductRepo) queryResolved(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w: %w", domain.ErrUnavailable, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.CategoryID, &p.CategoryName,
			&p.Quantity, &p.ReorderLevel, &p.Price, &p.MaximumDiscountedPrice); err != nil {
			return nil, fmt.Errorf("scan product: %w: %w", domain.ErrUnavailable, err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reemplaza los seis campos rastreados (replace completo, no merge).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET product_name = $2, category_id = $3, quantity = $4, reorder_level = $5, price = $6, maximum_discounted_price = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ProductName, product.CategoryID,
		product.Quantity, product.ReorderLevel, product.Price, product.MaximumDiscountedPrice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Delete elimina un producto por ID. El caller lee el pre-image antes de
// borrar; aquí no se devuelve el estado previo.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}
