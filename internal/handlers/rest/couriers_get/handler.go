package couriers_get

import (
	"encoding/json"
	"net/http"

	"backoffice/internal/generated/dto"
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
	courierEntities, err := h.service.GetCouriers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := make([]dto.Courier, len(courierEntities))
	for i, courierEntity := range courierEntities {
		courierDTOs[i].ID = courierEntity.ID
		courierDTOs[i].Name = courierEntity.Name
		courierDTOs[i].Status = courierEntity.Status.String()
		courierDTOs[i].Mode = courierEntity.Mode.String()
		courierDTOs[i].ReturnFeePercent = courierEntity.ReturnFeePercent
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
