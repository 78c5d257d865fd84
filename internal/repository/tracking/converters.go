package tracking

import (
	"backoffice/internal/entities"
)

func ToDomain(t *TrackingDB) *entities.TrackingNumber {
	if t == nil {
		return nil
	}

	return &entities.TrackingNumber{
		ID:        t.ID,
		CourierID: t.CourierID,
		Value:     t.Value,
		State:     entities.TrackingStateType(t.State),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToDomainList(trackingDB []TrackingDB) []entities.TrackingNumber {
	if len(trackingDB) == 0 {
		return []entities.TrackingNumber{}
	}

	result := make([]entities.TrackingNumber, len(trackingDB))
	for i, row := range trackingDB {
		result[i] = *ToDomain(&row)
	}
	return result
}
