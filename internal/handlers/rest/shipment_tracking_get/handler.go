package shipment_tracking_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"freight/internal/entities"
	"freight/internal/generated/dto"
	"freight/internal/service/workflow"
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

// ServeHTTP возвращает журнал статусов отправки. Если заданы query-параметры
// line и status, вместо журнала возвращается предикат "статус когда-либо достигался".
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	line := r.URL.Query().Get("line")
	status := r.URL.Query().Get("status")
	if line != "" || status != "" {
		h.serveReached(w, r, shipmentID, line, status)
		return
	}

	events, err := h.service.ListTrackingHistory(r.Context(), shipmentID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TrackingHistoryResponse{
		Events: make([]dto.TrackingEvent, 0, len(events)),
	}
	for _, event := range events {
		response.Events = append(response.Events, dto.TrackingEvent{
			ID:         event.ID,
			Line:       event.Line.String(),
			OccurredAt: event.OccurredAt,
			ShipmentID: event.ShipmentID,
			Status:     event.Status,
		})
	}

	h.encode(w, response)
}

func (h *Handler) serveReached(w http.ResponseWriter, r *http.Request, shipmentID int64, line, status string) {
	reached, err := h.service.HasEverReached(r.Context(), shipmentID, entities.StatusLine(line), status)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrInvalidLine),
			errors.Is(err, workflow.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.encode(w, dto.TrackingReachedResponse{Reached: reached})
}

func (h *Handler) encode(w http.ResponseWriter, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
