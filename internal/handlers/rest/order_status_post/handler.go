package order_status_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/entities"
	"backoffice/internal/generated/dto"
	"backoffice/internal/pkg/middlewares/actor"
	"backoffice/internal/service/dispatch"
	"backoffice/pkg/logger"
)

const (
	actionComplete       = "complete"
	actionReturnComplete = "return_complete"
	actionReturnHandover = "return_handover"
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
	vars := mux.Vars(r)
	orderID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var transition func(context.Context, entities.Actor, int64) (*entities.Order, error)
	switch vars["action"] {
	case actionComplete:
		transition = h.service.Complete
	case actionReturnComplete:
		transition = h.service.ReturnComplete
	case actionReturnHandover:
		transition = h.service.ReturnHandover
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	orderEntity, err := transition(r.Context(), actor.FromContext(r.Context()), orderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidStatus):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
