package shipment_status_post

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var transitionDTO dto.ShipmentTransitionRequest
	err = json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	line := entities.StatusLine(transitionDTO.Line)
	transition, err := h.service.TransitionShipment(r.Context(), shipmentID, line, transitionDTO.Status)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrInvalidLine),
			errors.Is(err, workflow.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, workflow.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, workflow.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentTransitionResponse{
		LedgerEntryID: transition.LedgerEntryID,
		Line:          transition.Line.String(),
		NewStatus:     transition.NewStatus,
		OccurredAt:    transition.OccurredAt,
		OldStatus:     transition.OldStatus,
		ShipmentID:    transition.ShipmentID,
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
