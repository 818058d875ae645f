package usecase

import (
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// ActivityLogUseCase lectura de la bitácora de actividad. Solo listar:
// las entradas se crean desde ProductUseCase vía audit.Trail y jamás se
// modifican.
type ActivityLogUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityLogUseCase construye el caso de uso.
func NewActivityLogUseCase(repo repository.ActivityLogRepository) *ActivityLogUseCase {
	return &ActivityLogUseCase{repo: repo}
}

// List devuelve todas las entradas, la más reciente primero (orden del repo).
func (uc *ActivityLogUseCase) List() ([]dto.ActivityLogResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityLogResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toActivityLogResponse(e))
	}
	return items, nil
}

func toActivityLogResponse(e *entity.ActivityLogEntry) dto.ActivityLogResponse {
	return dto.ActivityLogResponse{
		ID:          e.ID,
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		Action:      e.Action,
		Reason:      e.Reason,
		At:          e.At,
		By:          e.By,
		Changes:     e.Changes,
		Snapshot:    e.Snapshot,
	}
}
