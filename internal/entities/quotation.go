package entities

import "time"

// Quotation - заявка одного клиента внутри контейнера.
//
// ConfirmedBoxCount и ConfirmedVolume - кэшируемая проекция: сумма
// подтвержденных количеств по дочерним отправкам со статусом loaded.
// Поля пересчитываются транзакционно на пути записи (см. service/aggregation)
// и сами по себе источником истины не являются.
type Quotation struct {
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

type QuotationModify struct {
	ID             *int64
	ContainerID    *int64
	CustomerName   *string
	CustomerPhone  *string
	BillingAddress *string
	Confirmed      *bool
}

// AggregateTotals - подтвержденные итоги заявки либо контейнера.
type AggregateTotals struct {
	ConfirmedBoxCount int64
	ConfirmedVolume   float64
}
