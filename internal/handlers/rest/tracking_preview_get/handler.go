package tracking_preview_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"backoffice/internal/generated/dto"
	"backoffice/internal/service/allocator"
	"backoffice/internal/service/courier"
	"backoffice/pkg/logger"
)

const (
	defaultCount = 1
	maxCount     = 100
)

type Handler struct {
	log      handlerLogger
	couriers CourierProvider
	service  Service
}

func New(log handlerLogger, couriers CourierProvider, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		couriers: couriers,
		service:  service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	courierID, err := strconv.ParseInt(query.Get("courier_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	count := defaultCount
	if countStr := query.Get("count"); countStr != "" {
		count, err = strconv.Atoi(countStr)
		if err != nil || count <= 0 || count > maxCount {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	courierEntity, err := h.couriers.GetCourier(r.Context(), courierID)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	next, err := h.service.PreviewNext(r.Context(), courierEntity, count)
	if err != nil {
		switch {
		case errors.Is(err, allocator.ErrPreviewUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	available, err := h.service.CountAvailable(r.Context(), courierID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TrackingPreviewResponse{
		CourierID: courierID,
		Available: available,
		Next:      next,
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
