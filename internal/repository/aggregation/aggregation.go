package aggregation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	service "freight/internal/service/aggregation"
)

// Repository выполняет пересчет производных итогов одним UPDATE ... FROM:
// фильтрация по loaded и суммирование происходят на стороне БД, внутри
// транзакции вызывающего.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) RecomputeQuotationTotals(ctx context.Context, quotationID int64) (*entities.Quotation, error) {
	query := `
		UPDATE quotations q
		SET confirmed_box_count = totals.boxes,
			confirmed_volume = totals.volume,
			updated_at = NOW()
		FROM (
			SELECT
				COALESCE(SUM(confirmed_box_count), 0) AS boxes,
				COALESCE(SUM(confirmed_cbm), 0) AS volume
			FROM provider_shipments
			WHERE quotation_id = $1 AND origin_status = 'loaded'
		) totals
		WHERE q.id = $1
		RETURNING q.id, q.container_id, q.customer_name, q.customer_phone, q.billing_address,
			q.confirmed, q.confirmed_box_count, q.confirmed_volume, q.created_at, q.updated_at
	`

	var quotationDB QuotationTotalsDB
	err := r.querier.QueryRow(ctx, query, quotationID).Scan(
		&quotationDB.ID,
		&quotationDB.ContainerID,
		&quotationDB.CustomerName,
		&quotationDB.CustomerPhone,
		&quotationDB.BillingAddress,
		&quotationDB.Confirmed,
		&quotationDB.ConfirmedBoxCount,
		&quotationDB.ConfirmedVolume,
		&quotationDB.CreatedAt,
		&quotationDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("unexpected aggregation repository quotation recompute error: %w", err)
	}

	return ToQuotationDomain(&quotationDB), nil
}

// RecomputeContainerTotals суммирует только отправки подтвержденных заявок.
func (r *Repository) RecomputeContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error) {
	query := `
		UPDATE containers c
		SET confirmed_box_count = totals.boxes,
			confirmed_volume = totals.volume,
			updated_at = NOW()
		FROM (
			SELECT
				COALESCE(SUM(ps.confirmed_box_count), 0) AS boxes,
				COALESCE(SUM(ps.confirmed_cbm), 0) AS volume
			FROM provider_shipments ps
			JOIN quotations q ON q.id = ps.quotation_id
			WHERE q.container_id = $1
				AND q.confirmed
				AND ps.origin_status = 'loaded'
		) totals
		WHERE c.id = $1
		RETURNING c.confirmed_box_count, c.confirmed_volume
	`

	var totals entities.AggregateTotals
	err := r.querier.QueryRow(ctx, query, containerID).Scan(
		&totals.ConfirmedBoxCount,
		&totals.ConfirmedVolume,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.AggregateTotals{}, service.ErrContainerNotFound
		}
		return entities.AggregateTotals{}, fmt.Errorf("unexpected aggregation repository container recompute error: %w", err)
	}

	return totals, nil
}

func (r *Repository) GetQuotationTotals(ctx context.Context, quotationID int64) (entities.AggregateTotals, error) {
	query := `
		SELECT confirmed_box_count, confirmed_volume
		FROM quotations
		WHERE id = $1
	`

	var totals entities.AggregateTotals
	err := r.querier.QueryRow(ctx, query, quotationID).Scan(
		&totals.ConfirmedBoxCount,
		&totals.ConfirmedVolume,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.AggregateTotals{}, service.ErrQuotationNotFound
		}
		return entities.AggregateTotals{}, fmt.Errorf("unexpected aggregation repository quotation totals error: %w", err)
	}

	return totals, nil
}

func (r *Repository) GetContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error) {
	query := `
		SELECT confirmed_box_count, confirmed_volume
		FROM containers
		WHERE id = $1
	`

	var totals entities.AggregateTotals
	err := r.querier.QueryRow(ctx, query, containerID).Scan(
		&totals.ConfirmedBoxCount,
		&totals.ConfirmedVolume,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.AggregateTotals{}, service.ErrContainerNotFound
		}
		return entities.AggregateTotals{}, fmt.Errorf("unexpected aggregation repository container totals error: %w", err)
	}

	return totals, nil
}

func (r *Repository) ListShipmentsByQuotation(ctx context.Context, quotationID int64) ([]entities.ProviderShipment, error) {
	query := `
		SELECT id, quotation_id, origin_status, coordination_status, confirmed_box_count, confirmed_cbm
		FROM provider_shipments
		WHERE quotation_id = $1
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected aggregation repository list shipments error: %w", err)
	}
	defer rows.Close()

	shipments := make([]entities.ProviderShipment, 0)
	for rows.Next() {
		var shipmentDB ShipmentTotalsDB
		err := rows.Scan(
			&shipmentDB.ID,
			&shipmentDB.QuotationID,
			&shipmentDB.OriginStatus,
			&shipmentDB.CoordinationStatus,
			&shipmentDB.ConfirmedBoxCount,
			&shipmentDB.ConfirmedCbm,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected aggregation repository scan error: %w", err)
		}
		shipments = append(shipments, *ToShipmentDomain(&shipmentDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected aggregation repository rows error: %w", err)
	}

	return shipments, nil
}

func (r *Repository) ListQuotationIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT id
		FROM quotations
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected aggregation repository list quotation ids error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected aggregation repository scan error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected aggregation repository rows error: %w", err)
	}

	return ids, nil
}
