package auditlog

import (
	"encoding/json"

	"backoffice/internal/entities"
)

func ToDomain(entryModel *AuditEntryDB) (*entities.AuditEntry, error) {
	var details map[string]interface{}
	if len(entryModel.Details) > 0 {
		err := json.Unmarshal(entryModel.Details, &details)
		if err != nil {
			return nil, err
		}
	}

	return &entities.AuditEntry{
		ID:        entryModel.ID,
		ActorID:   entryModel.ActorID,
		Action:    entities.AuditAction(entryModel.Action),
		OrderID:   entryModel.OrderID,
		Details:   details,
		CreatedAt: entryModel.CreatedAt,
	}, nil
}

func ToDomainList(entryModels []AuditEntryDB) ([]entities.AuditEntry, error) {
	entryEntities := make([]entities.AuditEntry, 0, len(entryModels))
	for i := range entryModels {
		entryEntity, err := ToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entryEntities = append(entryEntities, *entryEntity)
	}

	return entryEntities, nil
}
