package tracking

import "time"

type TrackingEventDB struct {
	ID         int64
	ShipmentID int64
	Line       string
	Status     string
	OccurredAt time.Time
}
