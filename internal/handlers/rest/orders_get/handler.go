package orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"backoffice/internal/entities"
	"backoffice/internal/generated/dto"
	"backoffice/pkg/logger"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		orderDTOs[i] = dto.Order{
			ID:             orderEntity.ID,
			Status:         orderEntity.Status.String(),
			Interface:      orderEntity.Interface.String(),
			CustomerID:     orderEntity.CustomerID,
			TotalAmount:    orderEntity.TotalAmount,
			Currency:       orderEntity.Currency,
			PayStatus:      orderEntity.PayStatus.String(),
			TrackingNumber: orderEntity.TrackingNumber,
			CourierID:      orderEntity.CourierID,
			CallLog:        orderEntity.CallLog,
			DispatchNotes:  orderEntity.DispatchNotes,
			CancelReason:   orderEntity.CancelReason,
			CreatedBy:      orderEntity.CreatedBy,
			CreatedAt:      orderEntity.CreatedAt,
			UpdatedAt:      orderEntity.UpdatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	query := r.URL.Query()
	filter := entities.OrderFilter{
		Limit: defaultLimit,
	}

	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.OrderStatusType(statusStr)
		filter.Status = &status
	}
	if payStatusStr := query.Get("pay_status"); payStatusStr != "" {
		payStatus := entities.PayStatusType(payStatusStr)
		filter.PayStatus = &payStatus
	}
	if customerStr := query.Get("customer_id"); customerStr != "" {
		customerID, err := strconv.ParseInt(customerStr, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.CustomerID = &customerID
	}
	if trackingNumber := query.Get("tracking_number"); trackingNumber != "" {
		filter.TrackingNumber = &trackingNumber
	}
	if createdByStr := query.Get("created_by"); createdByStr != "" {
		createdBy, err := strconv.ParseInt(createdByStr, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.CreatedBy = &createdBy
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		filter.Limit = limit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.ParseUint(offsetStr, 10, 64)
		if err != nil {
			return entities.OrderFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}
