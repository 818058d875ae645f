package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Las categorías nunca se actualizan ni se eliminan.
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByName busca por nombre exacto ignorando mayúsculas/minúsculas.
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
