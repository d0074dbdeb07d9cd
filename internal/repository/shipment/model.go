package shipment

import "time"

type ProviderShipmentDB struct {
	ID                 int64
	QuotationID        int64
	SupplierName       string
	SupplierPhone      string
	OriginStatus       string
	CoordinationStatus string
	DeclaredBoxCount   int64
	DeclaredCbm        float64
	ConfirmedBoxCount  int64
	ConfirmedCbm       float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ProviderShipmentModifyDB struct {
	ID                 *int64
	QuotationID        *int64
	SupplierName       *string
	SupplierPhone      *string
	OriginStatus       *string
	CoordinationStatus *string
	DeclaredBoxCount   *int64
	DeclaredCbm        *float64
	ConfirmedBoxCount  *int64
	ConfirmedCbm       *float64
}
