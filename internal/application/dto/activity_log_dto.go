package dto

import (
	"encoding/json"
	"time"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// ActivityLogResponse salida de una entrada de la bitácora.
// `changes` solo aparece en update/stock-adjustment; `snapshot` en create/delete.
type ActivityLogResponse struct {
	ID          string               `json:"id"`
	ProductID   string               `json:"productId"`
	ProductName string               `json:"productName"`
	Action      string               `json:"action"`
	Reason      string               `json:"reason"`
	At          time.Time            `json:"at"`
	By          string               `json:"by"`
	Changes     []entity.FieldChange `json:"changes,omitempty"`
	Snapshot    json.RawMessage      `json:"snapshot,omitempty"`
}
