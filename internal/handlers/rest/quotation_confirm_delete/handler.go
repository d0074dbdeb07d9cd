package quotation_confirm_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"freight/internal/generated/dto"
	"freight/internal/service/quotation"
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
	quotationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	withdrawn, err := h.service.Withdraw(r.Context(), quotationID)
	if err != nil {
		switch {
		case errors.Is(err, quotation.ErrQuotationNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, quotation.ErrNotConfirmed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	quotationDTO := dto.Quotation{
		BillingAddress:    withdrawn.BillingAddress,
		Confirmed:         withdrawn.Confirmed,
		ConfirmedBoxCount: withdrawn.ConfirmedBoxCount,
		ConfirmedVolume:   withdrawn.ConfirmedVolume,
		ContainerID:       withdrawn.ContainerID,
		CustomerName:      withdrawn.CustomerName,
		CustomerPhone:     withdrawn.CustomerPhone,
		ID:                withdrawn.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(quotationDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
