package tracking

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/workflow"
)

// Repository хранит журнал статусов. Таблица append-only: только INSERT
// и чтение, никаких UPDATE/DELETE.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, event entities.TrackingEvent) (int64, error) {
	query := `
		INSERT INTO tracking_events (shipment_id, line, status, occurred_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		event.ShipmentID,
		event.Line.String(),
		event.Status,
		event.OccurredAt,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, workflow.ErrShipmentNotFound
		}
		return 0, fmt.Errorf("unexpected tracking repository append error: %w", err)
	}

	return id, nil
}

func (r *Repository) HasStatus(ctx context.Context, shipmentID int64, line entities.StatusLine, status string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM tracking_events
			WHERE shipment_id = $1 AND line = $2 AND status = $3
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, shipmentID, line.String(), status).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected tracking repository has status error: %w", err)
	}

	return exists, nil
}

func (r *Repository) ListByShipment(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error) {
	query := `
		SELECT id, shipment_id, line, status, occurred_at
		FROM tracking_events
		WHERE shipment_id = $1
		ORDER BY occurred_at ASC, id ASC
	`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.TrackingEvent, 0)
	for rows.Next() {
		var eventDB TrackingEventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.ShipmentID,
			&eventDB.Line,
			&eventDB.Status,
			&eventDB.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository scan error: %w", err)
		}
		events = append(events, *ToDomain(&eventDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository rows error: %w", err)
	}

	return events, nil
}
