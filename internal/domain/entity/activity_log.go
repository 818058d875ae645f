package entity

import (
	"encoding/json"
	"time"
)

// Acciones registrables en la bitácora de actividad de productos.
const (
	ActionCreate          = "create"
	ActionUpdate          = "update"
	ActionDelete          = "delete"
	ActionStockAdjustment = "stock-adjustment"
)

// Tipos de ajuste de inventario.
const (
	AdjustmentAdd    = "add"
	AdjustmentRemove = "remove"
)

// FieldChange describe el cambio de un campo rastreado en un update:
// forma string del valor anterior y del nuevo.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// ActivityLogEntry es un registro inmutable de la bitácora (append-only).
// ProductName se desnormaliza para que la entrada sobreviva al borrado del
// producto. Changes solo se llena en update/stock-adjustment; Snapshot solo
// en create/delete (documento completo del producto).
type ActivityLogEntry struct {
	ID          string
	ProductID   string
	ProductName string
	Action      string // create, update, delete, stock-adjustment
	Reason      string
	At          time.Time
	By          string // nombre del actor o "system"
	Changes     []FieldChange
	Snapshot    json.RawMessage
}
