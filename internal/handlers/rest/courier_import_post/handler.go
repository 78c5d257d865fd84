package courier_import_post

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

	var importDTO dto.ParcelImportRequest
	err = json.NewDecoder(r.Body).Decode(&importDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	imported, err := h.service.ImportExistingParcels(r.Context(), actor.FromContext(r.Context()), id, importDTO.Count)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, allocator.ErrUnsupportedMode),
			errors.Is(err, allocator.ErrMissingCredentials):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, allocator.ErrRemoteAPI):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ParcelImportResponse{
		Imported: imported,
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
