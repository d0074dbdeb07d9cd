package container_slots_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"freight/internal/generated/dto"
	"freight/pkg/logger"
)

const dayLayout = "2006-01-02"

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
	containerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	includeFull := r.URL.Query().Get("include_full") == "true"

	slots, err := h.service.ListAvailableSlots(r.Context(), containerID, includeFull)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.SlotsResponse{
		Slots: make([]dto.Slot, 0, len(slots)),
	}
	for _, slot := range slots {
		response.Slots = append(response.Slots, dto.Slot{
			Assigned:    slot.Assigned,
			Available:   slot.Available,
			Capacity:    slot.Range.Capacity,
			Day:         slot.Date.Day.Format(dayLayout),
			DateID:      slot.Date.ID,
			EndMinute:   slot.Range.EndMinute,
			RangeID:     slot.Range.ID,
			StartMinute: slot.Range.StartMinute,
		})
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
