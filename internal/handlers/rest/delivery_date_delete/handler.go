package delivery_date_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	dateID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteDate(r.Context(), dateID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDateNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, schedule.ErrHasAssignments):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
