package delivery_range_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	rangeID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var rangeDTO dto.DeliveryRangeUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&rangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateRange(r.Context(), rangeID, rangeDTO.StartMinute, rangeDTO.EndMinute, rangeDTO.Capacity)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRange),
			errors.Is(err, schedule.ErrInvalidCapacity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrRangeOverlap),
			errors.Is(err, schedule.ErrCapacityBelowAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, schedule.ErrRangeNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryRange{
		Capacity:    updated.Capacity,
		DateID:      updated.DateID,
		EndMinute:   updated.EndMinute,
		ID:          updated.ID,
		StartMinute: updated.StartMinute,
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
