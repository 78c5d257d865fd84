package order_call_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/generated/dto"
	"backoffice/internal/pkg/middlewares/actor"
	"backoffice/internal/service/dispatch"
	"backoffice/pkg/logger"
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
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callDTO dto.CallStatusRequest
	err = json.NewDecoder(r.Body).Decode(&callDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.SetCallStatus(r.Context(), actor.FromContext(r.Context()), orderID, callDTO.CallLog, callDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrCallReasonTooShort):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
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
