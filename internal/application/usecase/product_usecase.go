package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// Motivos por defecto de la bitácora.
const (
	reasonCreate       = "New product added to inventory"
	reasonManualUpdate = "manual update"
	reasonDelete       = "Product removed from inventory"
)

const defaultReorderLevel = 10

// ProductUseCase casos de uso CRUD de productos más la coordinación
// mutación + auditoría: cada mutación lee el pre-image, escribe el producto y
// después registra la entrada de bitácora como paso best-effort separado.
// Los dos pasos NO son atómicos y no hay retry: si la bitácora falla, la
// mutación igual se reporta exitosa.
type ProductUseCase struct {
	repo  repository.ProductRepository
	trail audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, trail audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, trail: trail}
}

// Create crea un producto tras el chequeo de duplicado case-insensitive.
// Si ya existe, devuelve el existente junto con ErrDuplicate para que el
// handler lo incluya en la respuesta 400. En éxito registra la entrada
// "create" con snapshot completo y sin changes.
func (uc *ProductUseCase) Create(actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByName(in.ProductName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toProductResponse(existing), domain.ErrDuplicate
	}

	reorderLevel := defaultReorderLevel
	if in.ReorderLevel != nil {
		reorderLevel = *in.ReorderLevel
	}
	product := &entity.Product{
		ID:                     uuid.New().String(),
		ProductName:            in.ProductName,
		CategoryID:             in.Category,
		Quantity:               in.Quantity,
		ReorderLevel:           reorderLevel,
		Price:                  in.Price,
		MaximumDiscountedPrice: in.MaximumDiscountedPrice,
	}
	if err := uc.repo.Create(product); err != nil {
		if err == domain.ErrDuplicate {
			// Carrera con otro create: el índice único ganó; devolver el existente.
			if existing, getErr := uc.repo.GetByName(in.ProductName); getErr == nil && existing != nil {
				return toProductResponse(existing), domain.ErrDuplicate
			}
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}

	// Paso de auditoría post-commit, best-effort: el error se descarta a
	// propósito (Trail ya lo dejó en el log).
	_ = uc.trail.Record(&entity.ActivityLogEntry{
		ProductID:   product.ID,
		ProductName: product.ProductName,
		Action:      entity.ActionCreate,
		Reason:      reasonCreate,
		By:          actor,
		Snapshot:    audit.Snapshot(product),
	})

	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, con la categoría sin resolver.
// (nil, nil) cuando no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update reemplaza los seis campos rastreados y registra el diff si hubo
// cambios. Con descriptor de ajuste la acción pasa a "stock-adjustment" y el
// motivo es el del ajuste; sin él, "update" / "manual update". Un update
// no-op (diff vacío) no genera entrada de bitácora.
func (uc *ProductUseCase) Update(actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Adjustment != nil &&
		in.Adjustment.Type != entity.AdjustmentAdd && in.Adjustment.Type != entity.AdjustmentRemove {
		return nil, domain.ErrInvalidInput
	}

	original, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, nil
	}

	updated := &entity.Product{
		ID:                     id,
		ProductName:            in.ProductName,
		CategoryID:             in.Category,
		Quantity:               in.Quantity,
		ReorderLevel:           in.ReorderLevel,
		Price:                  in.Price,
		MaximumDiscountedPrice: in.MaximumDiscountedPrice,
	}
	if err := uc.repo.Update(updated); err != nil {
		return nil, err
	}

	if changes := audit.Diff(original, updated); len(changes) > 0 {
		action := entity.ActionUpdate
		reason := reasonManualUpdate
		if in.Adjustment != nil {
			action = entity.ActionStockAdjustment
			if in.Adjustment.Reason != "" {
				reason = in.Adjustment.Reason
			}
		}
		_ = uc.trail.Record(&entity.ActivityLogEntry{
			ProductID:   updated.ID,
			ProductName: updated.ProductName,
			Action:      action,
			Reason:      reason,
			By:          actor,
			Changes:     changes,
		})
	}

	return toProductResponse(updated), nil
}

// Delete lee el pre-image, borra el producto y registra la entrada "delete"
// con el snapshot previo. (nil, nil) si no existe: sin producto no hay borrado
// ni entrada.
func (uc *ProductUseCase) Delete(actor, id, reason string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = reasonDelete
	}
	_ = uc.trail.Record(&entity.ActivityLogEntry{
		ProductID:   product.ID,
		ProductName: product.ProductName,
		Action:      entity.ActionDelete,
		Reason:      reason,
		By:          actor,
		Snapshot:    audit.Snapshot(product),
	})

	return toProductResponse(product), nil
}

// List devuelve todos los productos con la categoría resuelta por nombre.
func (uc *ProductUseCase) List() ([]dto.ResolvedProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toResolvedResponses(list), nil
}

// SearchByName busca por substring case-insensitive del nombre.
// Lista vacía es un resultado válido, no un error.
func (uc *ProductUseCase) SearchByName(query string) ([]dto.ResolvedProductResponse, error) {
	list, err := uc.repo.SearchByName(query)
	if err != nil {
		return nil, err
	}
	return toResolvedResponses(list), nil
}

// FilterByCategory filtra por substring case-insensitive del nombre de
// categoría. Filtro en memoria sobre el catálogo completo: semántica
// preservada del original, aceptable solo a esta escala.
func (uc *ProductUseCase) FilterByCategory(term string) ([]dto.ResolvedProductResponse, error) {
	return uc.filter(&term, nil)
}

// FilterByQuantity filtra por cantidad estrictamente menor al umbral.
func (uc *ProductUseCase) FilterByQuantity(threshold int) ([]dto.ResolvedProductResponse, error) {
	return uc.filter(nil, &threshold)
}

// FilterCombined aplica ambos predicados en conjunción; un parámetro nil
// deshabilita su predicado.
func (uc *ProductUseCase) FilterCombined(term *string, threshold *int) ([]dto.ResolvedProductResponse, error) {
	return uc.filter(term, threshold)
}

func (uc *ProductUseCase) filter(term *string, threshold *int) ([]dto.ResolvedProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if term != nil && !containsFold(p.CategoryName, *term) {
			continue
		}
		// Umbral estricto: quantity < threshold, nunca inclusivo.
		if threshold != nil && p.Quantity >= *threshold {
			continue
		}
		filtered = append(filtered, p)
	}
	return toResolvedResponses(filtered), nil
}

// containsFold es el match substring case-insensitive de los filtros
// (mismo comportamiento que toLowerCase().includes() del original).
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                     p.ID,
		ProductName:            p.ProductName,
		Category:               p.CategoryID,
		Quantity:               p.Quantity,
		ReorderLevel:           p.ReorderLevel,
		Price:                  p.Price,
		MaximumDiscountedPrice: p.MaximumDiscountedPrice,
	}
}

func toResolvedResponses(list []*entity.Product) []dto.ResolvedProductResponse {
	items := make([]dto.ResolvedProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ResolvedProductResponse{
			ID:                     p.ID,
			ProductName:            p.ProductName,
			Category:               dto.CategoryRef{CategoryName: p.CategoryName},
			Quantity:               p.Quantity,
			ReorderLevel:           p.ReorderLevel,
			Price:                  p.Price,
			MaximumDiscountedPrice: p.MaximumDiscountedPrice,
		})
	}
	return items
}
