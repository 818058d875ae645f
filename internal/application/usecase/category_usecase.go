package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías: listar y crear.
// No hay update ni delete: las categorías son create-only.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create recorta el nombre y hace el chequeo de duplicado case-insensitive.
// Si la categoría ya existe devuelve la existente junto con ErrDuplicate,
// para que el handler la incluya en la respuesta 400.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.CategoryName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toCategoryResponse(existing), domain.ErrDuplicate
	}

	category := &entity.Category{
		ID:           uuid.New().String(),
		CategoryName: name,
		Description:  in.Description,
	}
	if err := uc.repo.Create(category); err != nil {
		if err == domain.ErrDuplicate {
			if existing, getErr := uc.repo.GetByName(name); getErr == nil && existing != nil {
				return toCategoryResponse(existing), domain.ErrDuplicate
			}
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías, sin garantía de orden.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:           c.ID,
		CategoryName: c.CategoryName,
		Description:  c.Description,
	}
}
