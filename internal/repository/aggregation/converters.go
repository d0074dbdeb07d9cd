package aggregation

import "freight/internal/entities"

func ToQuotationDomain(quotationDB *QuotationTotalsDB) *entities.Quotation {
	return &entities.Quotation{
		ID:                quotationDB.ID,
		ContainerID:       quotationDB.ContainerID,
		CustomerName:      quotationDB.CustomerName,
		CustomerPhone:     quotationDB.CustomerPhone,
		BillingAddress:    quotationDB.BillingAddress,
		Confirmed:         quotationDB.Confirmed,
		ConfirmedBoxCount: quotationDB.ConfirmedBoxCount,
		ConfirmedVolume:   quotationDB.ConfirmedVolume,
		CreatedAt:         quotationDB.CreatedAt,
		UpdatedAt:         quotationDB.UpdatedAt,
	}
}

func ToShipmentDomain(shipmentDB *ShipmentTotalsDB) *entities.ProviderShipment {
	return &entities.ProviderShipment{
		ID:                 shipmentDB.ID,
		QuotationID:        shipmentDB.QuotationID,
		OriginStatus:       entities.OriginStatusType(shipmentDB.OriginStatus),
		CoordinationStatus: entities.CoordinationStatusType(shipmentDB.CoordinationStatus),
		ConfirmedBoxCount:  shipmentDB.ConfirmedBoxCount,
		ConfirmedCbm:       shipmentDB.ConfirmedCbm,
	}
}
