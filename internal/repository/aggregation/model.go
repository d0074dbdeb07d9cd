package aggregation

import "time"

type QuotationTotalsDB struct {
	ID                int64
	ContainerID       int64
	CustomerName      string
	CustomerPhone     string
	BillingAddress    string
	Confirmed         bool
	ConfirmedBoxCount int64
	ConfirmedVolume   float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ShipmentTotalsDB - усеченная проекция отправки: только поля, участвующие
// в пересчете итогов.
type ShipmentTotalsDB struct {
	ID                 int64
	QuotationID        int64
	OriginStatus       string
	CoordinationStatus string
	ConfirmedBoxCount  int64
	ConfirmedCbm       float64
}
