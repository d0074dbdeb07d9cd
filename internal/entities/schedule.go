package entities

import "time"

// DeliveryDate - день выдачи груза по контейнеру.
type DeliveryDate struct {
	ID          int64
	ContainerID int64
	Day         time.Time // только дата, время обнулено
	CreatedAt   time.Time
}

// DeliveryRange - окно выдачи внутри дня с конечной вместимостью.
// StartMinute/EndMinute - минуты от полуночи, интервал [start, end).
// Окна одного дня не пересекаются.
type DeliveryRange struct {
	ID          int64
	DateID      int64
	StartMinute int
	EndMinute   int
	Capacity    int64
	CreatedAt   time.Time
}

type DeliveryRangeModify struct {
	ID          *int64
	DateID      *int64
	StartMinute *int
	EndMinute   *int
	Capacity    *int64
}

// RangeAssignment - бронь заявки на конкретное окно выдачи.
// На заявку допускается не более одной активной брони в рамках контейнера.
type RangeAssignment struct {
	ID          int64
	RangeID     int64
	QuotationID int64
	CreatedAt   time.Time
}

// SlotAvailability - окно с остатком вместимости для листинга слотов.
type SlotAvailability struct {
	Date      DeliveryDate
	Range     DeliveryRange
	Assigned  int64
	Available int64
}

// Overlaps сообщает, пересекаются ли два полуоткрытых интервала [start, end).
func (r DeliveryRange) Overlaps(other DeliveryRange) bool {
	return r.StartMinute < other.EndMinute && other.StartMinute < r.EndMinute
}
