package schedule

import "freight/internal/entities"

func ToDateDomain(dateDB *DeliveryDateDB) *entities.DeliveryDate {
	return &entities.DeliveryDate{
		ID:          dateDB.ID,
		ContainerID: dateDB.ContainerID,
		Day:         dateDB.Day,
		CreatedAt:   dateDB.CreatedAt,
	}
}

func ToRangeDomain(rangeDB *DeliveryRangeDB) *entities.DeliveryRange {
	return &entities.DeliveryRange{
		ID:          rangeDB.ID,
		DateID:      rangeDB.DateID,
		StartMinute: rangeDB.StartMinute,
		EndMinute:   rangeDB.EndMinute,
		Capacity:    rangeDB.Capacity,
		CreatedAt:   rangeDB.CreatedAt,
	}
}

func ToAssignmentDomain(assignmentDB *RangeAssignmentDB) *entities.RangeAssignment {
	return &entities.RangeAssignment{
		ID:          assignmentDB.ID,
		RangeID:     assignmentDB.RangeID,
		QuotationID: assignmentDB.QuotationID,
		CreatedAt:   assignmentDB.CreatedAt,
	}
}

func ToSlotDomain(slotDB *SlotAvailabilityDB) entities.SlotAvailability {
	available := slotDB.Range.Capacity - slotDB.Assigned
	if available < 0 {
		available = 0
	}
	return entities.SlotAvailability{
		Date:      *ToDateDomain(&slotDB.Date),
		Range:     *ToRangeDomain(&slotDB.Range),
		Assigned:  slotDB.Assigned,
		Available: available,
	}
}
