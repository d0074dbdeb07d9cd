package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	service "freight/internal/service/schedule"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	dateColumns  = `id, container_id, day, created_at`
	rangeColumns = `id, date_id, start_minute, end_minute, capacity, created_at`
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateDate(ctx context.Context, containerID int64, day time.Time) (*entities.DeliveryDate, error) {
	query := fmt.Sprintf(`
		INSERT INTO delivery_dates (container_id, day)
		VALUES ($1, $2::date)
		RETURNING %s
	`, dateColumns)

	var dateDB DeliveryDateDB
	err := scanDate(r.querier.QueryRow(ctx, query, containerID, day), &dateDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, service.ErrContainerNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository create date error: %w", err)
	}

	return ToDateDomain(&dateDB), nil
}

func (r *Repository) GetDateByID(ctx context.Context, dateID int64) (*entities.DeliveryDate, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM delivery_dates
		WHERE id = $1
	`, dateColumns)

	var dateDB DeliveryDateDB
	err := scanDate(r.querier.QueryRow(ctx, query, dateID), &dateDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDateNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository get date error: %w", err)
	}

	return ToDateDomain(&dateDB), nil
}

func (r *Repository) DeleteDate(ctx context.Context, dateID int64) error {
	query := `
		DELETE FROM delivery_dates
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query, dateID)
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete date error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrDateNotFound
	}

	return nil
}

func (r *Repository) CreateRange(ctx context.Context, rangeModify entities.DeliveryRangeModify) (*entities.DeliveryRange, error) {
	query := fmt.Sprintf(`
		INSERT INTO delivery_ranges (date_id, start_minute, end_minute, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, rangeColumns)

	var rangeDB DeliveryRangeDB
	err := scanRange(r.querier.QueryRow(ctx, query,
		rangeModify.DateID,
		rangeModify.StartMinute,
		rangeModify.EndMinute,
		rangeModify.Capacity,
	), &rangeDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, service.ErrDateNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository create range error: %w", err)
	}

	return ToRangeDomain(&rangeDB), nil
}

func (r *Repository) GetRangeByIDForUpdate(ctx context.Context, rangeID int64) (*entities.DeliveryRange, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM delivery_ranges
		WHERE id = $1
		FOR UPDATE
	`, rangeColumns)

	var rangeDB DeliveryRangeDB
	err := scanRange(r.querier.QueryRow(ctx, query, rangeID), &rangeDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrRangeNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository lock range error: %w", err)
	}

	return ToRangeDomain(&rangeDB), nil
}

func (r *Repository) ListRangesByDate(ctx context.Context, dateID int64) ([]entities.DeliveryRange, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM delivery_ranges
		WHERE date_id = $1
		ORDER BY start_minute ASC
	`, rangeColumns)

	rows, err := r.querier.Query(ctx, query, dateID)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list ranges error: %w", err)
	}
	defer rows.Close()

	ranges := make([]entities.DeliveryRange, 0)
	for rows.Next() {
		var rangeDB DeliveryRangeDB
		err := rows.Scan(
			&rangeDB.ID,
			&rangeDB.DateID,
			&rangeDB.StartMinute,
			&rangeDB.EndMinute,
			&rangeDB.Capacity,
			&rangeDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan error: %w", err)
		}
		ranges = append(ranges, *ToRangeDomain(&rangeDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository rows error: %w", err)
	}

	return ranges, nil
}

func (r *Repository) UpdateRange(ctx context.Context, rangeModify entities.DeliveryRangeModify) (*entities.DeliveryRange, error) {
	builder := qb.
		Update("delivery_ranges")

	// опциональные поля
	if rangeModify.StartMinute != nil {
		builder = builder.Set("start_minute", rangeModify.StartMinute)
	}
	if rangeModify.EndMinute != nil {
		builder = builder.Set("end_minute", rangeModify.EndMinute)
	}
	if rangeModify.Capacity != nil {
		builder = builder.Set("capacity", rangeModify.Capacity)
	}

	builder = builder.
		Where(sq.Eq{"id": rangeModify.ID}).
		Suffix("RETURNING " + rangeColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository update range error: %w", err)
	}

	var rangeDB DeliveryRangeDB
	err = scanRange(r.querier.QueryRow(ctx, query, args...), &rangeDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrRangeNotFound
		}
		return nil, fmt.Errorf("unexpected schedule repository update range error: %w", err)
	}

	return ToRangeDomain(&rangeDB), nil
}

func (r *Repository) DeleteRange(ctx context.Context, rangeID int64) error {
	query := `
		DELETE FROM delivery_ranges
		WHERE id = $1
	`

	tag, err := r.querier.Exec(ctx, query, rangeID)
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete range error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrRangeNotFound
	}

	return nil
}

func (r *Repository) CountAssignmentsByRange(ctx context.Context, rangeID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM range_assignments
		WHERE range_id = $1
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, rangeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected schedule repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) CountAssignmentsByDate(ctx context.Context, dateID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM range_assignments ra
		JOIN delivery_ranges dr ON dr.id = ra.range_id
		WHERE dr.date_id = $1
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, dateID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected schedule repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) CreateAssignment(ctx context.Context, rangeID, quotationID, containerID int64) (*entities.RangeAssignment, error) {
	query := `
		INSERT INTO range_assignments (range_id, quotation_id, container_id)
		VALUES ($1, $2, $3)
		RETURNING id, range_id, quotation_id, created_at
	`

	var assignmentDB RangeAssignmentDB
	err := r.querier.QueryRow(ctx, query, rangeID, quotationID, containerID).Scan(
		&assignmentDB.ID,
		&assignmentDB.RangeID,
		&assignmentDB.QuotationID,
		&assignmentDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, service.ErrDuplicateAssignment
		}
		return nil, fmt.Errorf("unexpected schedule repository create assignment error: %w", err)
	}

	return ToAssignmentDomain(&assignmentDB), nil
}

func (r *Repository) DeleteAssignment(ctx context.Context, quotationID, containerID int64) error {
	query := `
		DELETE FROM range_assignments
		WHERE quotation_id = $1 AND container_id = $2
	`

	tag, err := r.querier.Exec(ctx, query, quotationID, containerID)
	if err != nil {
		return fmt.Errorf("unexpected schedule repository delete assignment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrAssignmentNotFound
	}

	return nil
}

func (r *Repository) ListSlots(ctx context.Context, containerID int64) ([]entities.SlotAvailability, error) {
	query := `
		SELECT
			dd.id, dd.container_id, dd.day, dd.created_at,
			dr.id, dr.date_id, dr.start_minute, dr.end_minute, dr.capacity, dr.created_at,
			COUNT(ra.id) AS assigned
		FROM delivery_dates dd
		JOIN delivery_ranges dr ON dr.date_id = dd.id
		LEFT JOIN range_assignments ra ON ra.range_id = dr.id
		WHERE dd.container_id = $1
		GROUP BY dd.id, dr.id
		ORDER BY dd.day ASC, dr.start_minute ASC
	`

	rows, err := r.querier.Query(ctx, query, containerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected schedule repository list slots error: %w", err)
	}
	defer rows.Close()

	slots := make([]entities.SlotAvailability, 0)
	for rows.Next() {
		var slotDB SlotAvailabilityDB
		err := rows.Scan(
			&slotDB.Date.ID,
			&slotDB.Date.ContainerID,
			&slotDB.Date.Day,
			&slotDB.Date.CreatedAt,
			&slotDB.Range.ID,
			&slotDB.Range.DateID,
			&slotDB.Range.StartMinute,
			&slotDB.Range.EndMinute,
			&slotDB.Range.Capacity,
			&slotDB.Range.CreatedAt,
			&slotDB.Assigned,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected schedule repository scan error: %w", err)
		}
		slots = append(slots, ToSlotDomain(&slotDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected schedule repository rows error: %w", err)
	}

	return slots, nil
}

func scanDate(row pgx.Row, dateDB *DeliveryDateDB) error {
	return row.Scan(
		&dateDB.ID,
		&dateDB.ContainerID,
		&dateDB.Day,
		&dateDB.CreatedAt,
	)
}

func scanRange(row pgx.Row, rangeDB *DeliveryRangeDB) error {
	return row.Scan(
		&rangeDB.ID,
		&rangeDB.DateID,
		&rangeDB.StartMinute,
		&rangeDB.EndMinute,
		&rangeDB.Capacity,
		&rangeDB.CreatedAt,
	)
}
