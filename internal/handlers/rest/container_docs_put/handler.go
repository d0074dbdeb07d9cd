package container_docs_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

	var attachDTO dto.ArtifactAttachRequest
	err = json.NewDecoder(r.Body).Decode(&attachDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	state, err := h.service.AttachDocs(r.Context(), containerID, attachDTO.Ref)
	if err != nil {
		switch {
		case errors.Is(err, completion.ErrMissingArtifactRef):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, completion.ErrShipmentsInProgress):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, completion.ErrContainerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	stateDTO := dto.ContainerState{
		ChinaState:  state.ChinaState.String(),
		ContainerID: state.ContainerID,
		DocState:    state.DocState.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(stateDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
