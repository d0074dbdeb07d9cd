package quotation

import "time"

type QuotationDB struct {
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

type QuotationModifyDB struct {
	ID             *int64
	ContainerID    *int64
	CustomerName   *string
	CustomerPhone  *string
	BillingAddress *string
	Confirmed      *bool
}
