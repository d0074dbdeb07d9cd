package slot_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/internal/generated/dto"
	"freight/internal/service/schedule"
	"freight/pkg/logger"
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
	var assignDTO dto.SlotAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.Assign(r.Context(), assignDTO.QuotationID, assignDTO.RangeID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotFull),
			errors.Is(err, schedule.ErrDuplicateAssignment):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, schedule.ErrRangeNotFound),
			errors.Is(err, schedule.ErrDateNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.RangeAssignment{
		ID:          assignment.ID,
		QuotationID: assignment.QuotationID,
		RangeID:     assignment.RangeID,
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
