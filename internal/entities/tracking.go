package entities

import "time"

// TrackingEvent - запись журнала статусов отправки. Журнал append-only:
// события никогда не обновляются и не удаляются, поэтому предикат
// "отправка когда-либо была в статусе X" отвечается независимо от того,
// куда текущий статус ушел дальше.
type TrackingEvent struct {
	ID         int64
	ShipmentID int64
	Line       StatusLine
	Status     string
	OccurredAt time.Time
}

// StatusTransition - результат принятого статусного перехода.
type StatusTransition struct {
	ShipmentID    int64
	Line          StatusLine
	OldStatus     string
	NewStatus     string
	LedgerEntryID int64
	OccurredAt    time.Time
}

// StatusNotification - событие для внешнего диспетчера уведомлений.
// Отправляется fire-and-forget после коммита перехода.
type StatusNotification struct {
	EntityType string
	EntityID   int64
	Line       StatusLine
	OldStatus  string
	NewStatus  string
}
