package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	quotationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var createDTO dto.ShipmentCreateRequest
	err = json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipment, err := h.service.RegisterShipment(
		r.Context(),
		quotationID,
		createDTO.SupplierName,
		createDTO.SupplierPhone,
		createDTO.DeclaredBoxCount,
		createDTO.DeclaredCbm,
	)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrInvalidShipment):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, workflow.ErrQuotationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	shipmentDTO := dto.ProviderShipment{
		ConfirmedBoxCount:  shipment.ConfirmedBoxCount,
		ConfirmedCbm:       shipment.ConfirmedCbm,
		CoordinationStatus: shipment.CoordinationStatus.String(),
		DeclaredBoxCount:   shipment.DeclaredBoxCount,
		DeclaredCbm:        shipment.DeclaredCbm,
		ID:                 shipment.ID,
		OriginStatus:       shipment.OriginStatus.String(),
		QuotationID:        shipment.QuotationID,
		SupplierName:       shipment.SupplierName,
		SupplierPhone:      shipment.SupplierPhone,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(shipmentDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
