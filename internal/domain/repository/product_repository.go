package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Convención: (nil, nil) cuando el producto no existe; error solo cuando el
// backend falla. Un ID malformado cuenta como ausencia, no como error.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName busca por nombre exacto ignorando mayúsculas/minúsculas.
	GetByName(name string) (*entity.Product, error)
	// List devuelve todos los productos con CategoryName resuelto.
	List() ([]*entity.Product, error)
	// SearchByName busca por substring case-insensitive, con CategoryName resuelto.
	SearchByName(query string) ([]*entity.Product, error)
	// Update reemplaza los seis campos rastreados (no es merge parcial).
	Update(product *entity.Product) error
	Delete(id string) error
}
