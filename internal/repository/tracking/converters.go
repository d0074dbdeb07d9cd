package tracking

import "freight/internal/entities"

func ToDomain(e *TrackingEventDB) *entities.TrackingEvent {
	if e == nil {
		return nil
	}
	return &entities.TrackingEvent{
		ID:         e.ID,
		ShipmentID: e.ShipmentID,
		Line:       entities.StatusLine(e.Line),
		Status:     e.Status,
		OccurredAt: e.OccurredAt,
	}
}
