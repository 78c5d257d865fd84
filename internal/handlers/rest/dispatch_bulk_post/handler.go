package dispatch_bulk_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	var bulkDTO dto.BulkDispatchRequest
	err := json.NewDecoder(r.Body).Decode(&bulkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var courierID int64
	if bulkDTO.CourierID != nil {
		courierID = *bulkDTO.CourierID
	}
	var dispatchType string
	if bulkDTO.DispatchType != nil {
		dispatchType = *bulkDTO.DispatchType
	}
	var notes string
	if bulkDTO.Notes != nil {
		notes = *bulkDTO.Notes
	}

	result, err := h.service.DispatchBatch(r.Context(), actor.FromContext(r.Context()), bulkDTO.OrderIDs, courierID, dispatchType, notes)
	if err != nil {
		var shortfall *allocator.InsufficientTrackingError
		switch {
		case errors.Is(err, dispatch.ErrEmptyBatch),
			errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.As(err, &shortfall):
			h.writeShortfall(w, shortfall)
		case errors.Is(err, dispatch.ErrCourierInactive),
			errors.Is(err, dispatch.ErrNoDispatchCourier),
			errors.Is(err, allocator.ErrInsufficientTracking),
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

	failed := make([]dto.FailedOrder, len(result.Failed))
	for i, failedOrder := range result.Failed {
		failed[i] = dto.FailedOrder{
			OrderID: failedOrder.OrderID,
			Reason:  string(failedOrder.Reason),
		}
	}

	assignments := make(map[string]string, len(result.Assignments))
	for orderID, trackingNumber := range result.Assignments {
		assignments[strconv.FormatInt(orderID, 10)] = trackingNumber
	}

	response := dto.BulkDispatchResponse{
		DispatchedOrderIDs: result.DispatchedOrderIDs,
		Failed:             failed,
		Assignments:        assignments,
		CourierID:          result.CourierID,
		Mode:               result.Mode.String(),
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

// writeShortfall reports the all-or-nothing pool failure with the exact
// available/requested counts, so the caller knows how much to retry with.
func (h *Handler) writeShortfall(w http.ResponseWriter, shortfall *allocator.InsufficientTrackingError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusConflict)
	err := json.NewEncoder(w).Encode(dto.InsufficientTrackingResponse{
		Available: shortfall.Available,
		Requested: shortfall.Requested,
		Message:   shortfall.Error(),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
