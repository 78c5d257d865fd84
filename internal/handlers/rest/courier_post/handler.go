package courier_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice/internal/entities"
	"backoffice/internal/generated/dto"
	"backoffice/internal/service/courier"
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
	var courierCreateDTO dto.CourierCreate
	err := json.NewDecoder(r.Body).Decode(&courierCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mode, ok := entities.CourierModeFromString(courierCreateDTO.Mode)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	statusType := entities.CourierStatusType(courierCreateDTO.Status)

	courierModifyEntity := entities.CourierModify{
		Name:             &courierCreateDTO.Name,
		Status:           &statusType,
		Mode:             &mode,
		APIClientID:      courierCreateDTO.APIClientID,
		APIKey:           courierCreateDTO.APIKey,
		ReturnFeePercent: courierCreateDTO.ReturnFeePercent,
	}

	id, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidStatus),
			errors.Is(err, courier.ErrInvalidMode),
			errors.Is(err, courier.ErrInvalidReturnFee),
			errors.Is(err, courier.ErrCredentialsRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
