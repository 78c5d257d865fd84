package dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/generated/dto"
	"backoffice/internal/pkg/middlewares/actor"
	"backoffice/internal/service/allocator"
	"backoffice/internal/service/courier"
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

	var dispatchDTO dto.DispatchRequest
	err = json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var courierID int64
	if dispatchDTO.CourierID != nil {
		courierID = *dispatchDTO.CourierID
	}
	var notes string
	if dispatchDTO.Notes != nil {
		notes = *dispatchDTO.Notes
	}

	result, err := h.service.DispatchSingle(r.Context(), actor.FromContext(r.Context()), orderID, courierID, notes)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidStatus),
			errors.Is(err, dispatch.ErrCourierInactive),
			errors.Is(err, dispatch.ErrNoDispatchCourier),
			errors.Is(err, allocator.ErrNoTrackingAvailable),
			errors.Is(err, allocator.ErrMissingCredentials),
			errors.Is(err, allocator.ErrUnsupportedMode):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, allocator.ErrRemoteAPI):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DispatchResponse{
		OrderID:        result.Order.ID,
		TrackingNumber: result.TrackingNumber,
		CourierID:      result.CourierID,
		Mode:           result.Mode.String(),
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
