package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// ActorSystem es el actor por defecto cuando la petición no trae identidad.
const ActorSystem = "system"

// Recorder es el paso explícito de auditoría post-mutación. La bitácora es
// canal lateral: el caller ignora el error devuelto y la mutación primaria
// nunca depende de que el registro haya quedado escrito.
type Recorder interface {
	Record(entry *entity.ActivityLogEntry) error
}

var _ Recorder = (*Trail)(nil)

// Trail registra entradas de bitácora best-effort contra el repositorio.
// Un fallo de escritura se degrada a un Warn estructurado (entrada perdida,
// sin retry): producto y bitácora pueden divergir, es la semántica acordada.
type Trail struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewTrail construye el registrador de auditoría.
func NewTrail(repo repository.ActivityLogRepository, log *logger.Logger) *Trail {
	return &Trail{repo: repo, log: log}
}

// Record completa ID, At y By si faltan y apendiza la entrada. Devuelve el
// error del backend para que sea observable en tests; los usecases lo ignoran.
func (t *Trail) Record(entry *entity.ActivityLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	if entry.By == "" {
		entry.By = ActorSystem
	}
	if err := t.repo.Append(entry); err != nil {
		t.log.Warn().
			Err(err).
			Str("action", entry.Action).
			Str("product_id", entry.ProductID).
			Msg("entrada de bitácora perdida")
		return err
	}
	return nil
}
