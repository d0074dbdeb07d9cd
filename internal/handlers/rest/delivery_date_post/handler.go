package delivery_date_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"freight/internal/generated/dto"
	"freight/internal/service/schedule"
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
	var dateDTO dto.DeliveryDateCreateRequest
	err := json.NewDecoder(r.Body).Decode(&dateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	day, err := time.Parse(dayLayout, dateDTO.Day)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateDate(r.Context(), dateDTO.ContainerID, day)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDay):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, schedule.ErrContainerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryDate{
		ContainerID: created.ContainerID,
		Day:         created.Day.Format(dayLayout),
		ID:          created.ID,
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
