package container_state_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"freight/internal/generated/dto"
	"freight/internal/service/completion"
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
	containerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	view, err := h.service.ContainerState(r.Context(), containerID)
	if err != nil {
		switch {
		case errors.Is(err, completion.ErrContainerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	containerDTO := dto.ContainerView{
		ChinaState:        view.Container.ChinaState.String(),
		ConfirmedBoxCount: view.Container.ConfirmedBoxCount,
		ConfirmedVolume:   view.Container.ConfirmedVolume,
		DocState:          view.Container.DocState.String(),
		ID:                view.Container.ID,
		SequenceCode:      view.Container.SequenceCode,
	}
	if view.ManifestURL != "" {
		containerDTO.ManifestURL = pointer.ToString(view.ManifestURL)
	}
	if view.DocsURL != "" {
		containerDTO.DocsURL = pointer.ToString(view.DocsURL)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(containerDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
