package courier

import (
	"backoffice/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:               c.ID,
		Name:             c.Name,
		Status:           entities.CourierStatusType(c.Status),
		Mode:             entities.CourierMode(c.Mode),
		APIClientID:      c.APIClientID,
		APIKey:           c.APIKey,
		ReturnFeePercent: c.ReturnFeePercent,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{}

	if courierModify.ID != nil {
		courierDB.ID = courierModify.ID
	}
	if courierModify.Name != nil {
		courierDB.Name = courierModify.Name
	}
	if courierModify.Status != nil {
		status := courierModify.Status.String()
		courierDB.Status = &status
	}
	if courierModify.Mode != nil {
		mode := int(*courierModify.Mode)
		courierDB.Mode = &mode
	}
	if courierModify.APIClientID != nil {
		courierDB.APIClientID = courierModify.APIClientID
	}
	if courierModify.APIKey != nil {
		courierDB.APIKey = courierModify.APIKey
	}
	if courierModify.ReturnFeePercent != nil {
		courierDB.ReturnFeePercent = courierModify.ReturnFeePercent
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
