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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `INSERT INTO categories (id, category_name, description) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.CategoryName, category.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// GetByName busca una categoría por nombre exacto ignorando mayúsculas/minúsculas.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT id, category_name, description FROM categories WHERE LOWER(category_name) = LOWER($1)`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(&c.ID, &c.CategoryName, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w: %w", domain.ErrUnavailable, err)
	}
	return &c, nil
}

// List devuelve todas las categorías, sin garantía de orden.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, category_name, description FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", domain.ErrUnavailable, err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CategoryName, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w: %w", domain.ErrUnavailable, err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
