package courier_mode_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/entities"
	"backoffice/internal/generated/dto"
	"backoffice/internal/pkg/middlewares/actor"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var modeDTO dto.CourierModeUpdate
	err = json.NewDecoder(r.Body).Decode(&modeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mode, ok := entities.CourierModeFromString(modeDTO.Mode)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.SetCapabilityMode(r.Context(), actor.FromContext(r.Context()), id, mode)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidMode),
			errors.Is(err, courier.ErrCredentialsRequired):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTO := dto.Courier{
		ID:               courierEntity.ID,
		Name:             courierEntity.Name,
		Status:           courierEntity.Status.String(),
		Mode:             courierEntity.Mode.String(),
		ReturnFeePercent: courierEntity.ReturnFeePercent,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
