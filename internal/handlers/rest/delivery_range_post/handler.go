package delivery_range_post

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
	var rangeDTO dto.DeliveryRangeCreateRequest
	err := json.NewDecoder(r.Body).Decode(&rangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateRange(r.Context(), rangeDTO.DateID, rangeDTO.StartMinute, rangeDTO.EndMinute, rangeDTO.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRange),
			errors.Is(err, schedule.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrRangeOverlap):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, schedule.ErrDateNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryRange{
		Capacity:    created.Capacity,
		DateID:      created.DateID,
		EndMinute:   created.EndMinute,
		ID:          created.ID,
		StartMinute: created.StartMinute,
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
