package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo implementación del puerto ActivityLogRepository sobre PostgreSQL.
// La tabla es append-only; changes y snapshot viajan como JSONB.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador de persistencia para la bitácora.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Append inserta un registro inmutable. El CHECK de la tabla valida el enum de action.
func (r *ActivityLogRepo) Append(entry *entity.ActivityLogEntry) error {
	var changes []byte
	if len(entry.Changes) > 0 {
		b, err := json.Marshal(entry.Changes)
		if err != nil {
			return fmt.Errorf("marshal changes: %w", err)
		}
		changes = b
	}
	query := `
		INSERT INTO product_activity_log (id, product_id, product_name, action, reason, at, by_actor, changes, snapshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.ProductName, entry.Action, entry.Reason,
		entry.At, entry.By, changes, []byte(entry.Snapshot),
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// ListAll devuelve todas las entradas ordenadas por at descendente (contrato).
func (r *ActivityLogRepo) ListAll() ([]*entity.ActivityLogEntry, error) {
	query := `
		SELECT id, product_id, product_name, action, reason, at, by_actor, changes, snapshot
		FROM product_activity_log
		ORDER BY at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w: %w", domain.ErrUnavailable, err)
	}
	defer rows.Close()
	var list []*entity.ActivityLogEntry
	for rows.Next() {
		var e entity.ActivityLogEntry
		var changes, snapshot []byte
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.Action, &e.Reason,
			&e.At, &e.By, &changes, &snapshot); err != nil {
			return nil, fmt.Errorf("scan activity log: %w: %w", domain.ErrUnavailable, err)
		}
		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &e.Changes); err != nil {
				return nil, fmt.Errorf("unmarshal changes: %w", err)
			}
		}
		if len(snapshot) > 0 {
			e.Snapshot = json.RawMessage(snapshot)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
