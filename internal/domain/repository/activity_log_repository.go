package repository

import "github.com/tu-usuario/inventario-lite/internal/domain/entity"

// ActivityLogRepository define el puerto de persistencia para la bitácora.
// Append-only: no existen update ni delete.
type ActivityLogRepository interface {
	Append(entry *entity.ActivityLogEntry) error
	// ListAll devuelve todas las entradas ordenadas por At descendente
	// (la más reciente primero). El orden es parte del contrato.
	ListAll() ([]*entity.ActivityLogEntry, error)
}
