package order

import (
	"backoffice/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:             o.ID,
		Status:         entities.OrderStatusType(o.Status),
		Interface:      entities.OrderInterfaceType(o.Interface),
		CustomerID:     o.CustomerID,
		TotalAmount:    o.TotalAmount,
		Currency:       o.Currency,
		PayStatus:      entities.PayStatusType(o.PayStatus),
		TrackingNumber: o.TrackingNumber,
		CourierID:      o.CourierID,
		CallLog:        o.CallLog,
		DispatchNotes:  o.DispatchNotes,
		CancelReason:   o.CancelReason,
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.ID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.PayStatus != nil {
		payStatus := orderModify.PayStatus.String()
		orderDB.PayStatus = &payStatus
	}
	if orderModify.TrackingNumber != nil {
		orderDB.TrackingNumber = orderModify.TrackingNumber
	}
	if orderModify.CourierID != nil {
		orderDB.CourierID = orderModify.CourierID
	}
	if orderModify.CallLog != nil {
		orderDB.CallLog = orderModify.CallLog
	}
	if orderModify.DispatchNotes != nil {
		orderDB.DispatchNotes = orderModify.DispatchNotes
	}
	if orderModify.CancelReason != nil {
		orderDB.CancelReason = orderModify.CancelReason
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
