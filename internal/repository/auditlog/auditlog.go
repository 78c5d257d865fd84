package auditlog

import (
	"context"
	"encoding/json"
	"fmt"

	"backoffice/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append writes a single immutable row. There is no update or delete path
// for audit entries.
func (r *Repository) Append(ctx context.Context, entry entities.AuditEntry) error {
	var details []byte
	if entry.Details != nil {
		marshalled, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("unexpected auditlog repository append error: %w", err)
		}
		details = marshalled
	}

	query := `INSERT INTO audit_log (actor_id, action, order_id, details)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, entry.ActorID, entry.Action.String(), entry.OrderID, details)
	if err != nil {
		return fmt.Errorf("unexpected auditlog repository append error: %w", err)
	}

	return nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]entities.AuditEntry, error) {
	query := `SELECT id, actor_id, action, order_id, details, created_at
		FROM audit_log
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected auditlog repository listbyorder error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]AuditEntryDB, 0, 16)
	for rows.Next() {
		var entryModel AuditEntryDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.ActorID,
			&entryModel.Action,
			&entryModel.OrderID,
			&entryModel.Details,
			&entryModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected auditlog repository listbyorder error: %w", err)
		}
		entryModels = append(entryModels, entryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected auditlog repository listbyorder error: %w", err)
	}

	entryEntities, err := ToDomainList(entryModels)
	if err != nil {
		return nil, fmt.Errorf("unexpected auditlog repository listbyorder error: %w", err)
	}

	return entryEntities, nil
}
