package order_audit_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backoffice/internal/generated/dto"
	"backoffice/internal/service/dispatch"
	"backoffice/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	audit   AuditReader
}

func New(log handlerLogger, service Service, audit AuditReader) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		audit:   audit,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Сначала проверяем что заказ есть, иначе пустой список неотличим от 404.
	_, err = h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	entryEntities, err := h.audit.ListByOrder(r.Context(), orderID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	entryDTOs := make([]dto.AuditEntry, len(entryEntities))
	for i, entryEntity := range entryEntities {
		entryDTOs[i] = dto.AuditEntry{
			ID:        entryEntity.ID,
			ActorID:   entryEntity.ActorID,
			Action:    entryEntity.Action.String(),
			OrderID:   entryEntity.OrderID,
			CreatedAt: entryEntity.CreatedAt,
		}
		if entryEntity.Details != nil {
			details := entryEntity.Details
			entryDTOs[i].Details = &details
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(entryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
