package slot_unassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/generated/dto"
	"freight/internal/service/schedule"
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
	var unassignDTO dto.SlotUnassignRequest
	err := json.NewDecoder(r.Body).Decode(&unassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Unassign(r.Context(), unassignDTO.QuotationID, unassignDTO.ContainerID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
