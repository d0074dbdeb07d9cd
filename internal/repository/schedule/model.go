package schedule

import "time"

type DeliveryDateDB struct {
	ID          int64
	ContainerID int64
	Day         time.Time
	CreatedAt   time.Time
}

type DeliveryRangeDB struct {
	ID          int64
	DateID      int64
	StartMinute int
	EndMinute   int
	Capacity    int64
	CreatedAt   time.Time
}

type RangeAssignmentDB struct {
	ID          int64
	RangeID     int64
	QuotationID int64
	CreatedAt   time.Time
}

// SlotAvailabilityDB - строка листинга слотов: окно вместе с днем и числом броней.
type SlotAvailabilityDB struct {
	Date     DeliveryDateDB
	Range    DeliveryRangeDB
	Assigned int64
}
