package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	"freight/internal/repository"
	"freight/internal/service/workflow"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ProviderShipmentModify) (*entities.ProviderShipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModifyEntity)

	query := `
		INSERT INTO provider_shipments
			(quotation_id, supplier_name, supplier_phone, origin_status, coordination_status, declared_box_count, declared_cbm)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, quotation_id, supplier_name, supplier_phone, origin_status, coordination_status,
			declared_box_count, declared_cbm, confirmed_box_count, confirmed_cbm, created_at, updated_at
	`

	originStatus := entities.DefaultOriginStatus.String()
	if shipmentModifyDB.OriginStatus != nil {
		originStatus = *shipmentModifyDB.OriginStatus
	}
	coordinationStatus := entities.DefaultCoordinationStatus.String()
	if shipmentModifyDB.CoordinationStatus != nil {
		coordinationStatus = *shipmentModifyDB.CoordinationStatus
	}

	var shipmentDB ProviderShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyDB.QuotationID,
		shipmentModifyDB.SupplierName,
		shipmentModifyDB.SupplierPhone,
		originStatus,
		coordinationStatus,
		shipmentModifyDB.DeclaredBoxCount,
		shipmentModifyDB.DeclaredCbm,
	).Scan(
		&shipmentDB.ID,
		&shipmentDB.QuotationID,
		&shipmentDB.SupplierName,
		&shipmentDB.SupplierPhone,
		&shipmentDB.OriginStatus,
		&shipmentDB.CoordinationStatus,
		&shipmentDB.DeclaredBoxCount,
		&shipmentDB.DeclaredCbm,
		&shipmentDB.ConfirmedBoxCount,
		&shipmentDB.ConfirmedCbm,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, workflow.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetShipmentByID(ctx context.Context, id int64) (*entities.ProviderShipment, error) {
	query := `
		SELECT id, quotation_id, supplier_name, supplier_phone, origin_status, coordination_status,
			declared_box_count, declared_cbm, confirmed_box_count, confirmed_cbm, created_at, updated_at
		FROM provider_shipments
		WHERE id = $1
	`

	var shipmentDB ProviderShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&shipmentDB.ID,
		&shipmentDB.QuotationID,
		&shipmentDB.SupplierName,
		&shipmentDB.SupplierPhone,
		&shipmentDB.OriginStatus,
		&shipmentDB.CoordinationStatus,
		&shipmentDB.DeclaredBoxCount,
		&shipmentDB.DeclaredCbm,
		&shipmentDB.ConfirmedBoxCount,
		&shipmentDB.ConfirmedCbm,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workflow.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) UpdateShipment(ctx context.Context, shipmentModifyEntity entities.ProviderShipmentModify) (*entities.ProviderShipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("provider_shipments")

	// опциональные поля
	if shipmentModifyDB.SupplierName != nil {
		builder = builder.Set("supplier_name", shipmentModifyDB.SupplierName)
	}
	if shipmentModifyDB.SupplierPhone != nil {
		builder = builder.Set("supplier_phone", shipmentModifyDB.SupplierPhone)
	}
	if shipmentModifyDB.OriginStatus != nil {
		builder = builder.Set("origin_status", shipmentModifyDB.OriginStatus)
	}
	if shipmentModifyDB.CoordinationStatus != nil {
		builder = builder.Set("coordination_status", shipmentModifyDB.CoordinationStatus)
	}
	if shipmentModifyDB.DeclaredBoxCount != nil {
		builder = builder.Set("declared_box_count", shipmentModifyDB.DeclaredBoxCount)
	}
	if shipmentModifyDB.DeclaredCbm != nil {
		builder = builder.Set("declared_cbm", shipmentModifyDB.DeclaredCbm)
	}
	if shipmentModifyDB.ConfirmedBoxCount != nil {
		builder = builder.Set("confirmed_box_count", shipmentModifyDB.ConfirmedBoxCount)
	}
	if shipmentModifyDB.ConfirmedCbm != nil {
		builder = builder.Set("confirmed_cbm", shipmentModifyDB.ConfirmedCbm)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyDB.ID}).
		Suffix(`RETURNING id, quotation_id, supplier_name, supplier_phone, origin_status, coordination_status,
			declared_box_count, declared_cbm, confirmed_box_count, confirmed_cbm, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentDB ProviderShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&shipmentDB.ID,
		&shipmentDB.QuotationID,
		&shipmentDB.SupplierName,
		&shipmentDB.SupplierPhone,
		&shipmentDB.OriginStatus,
		&shipmentDB.CoordinationStatus,
		&shipmentDB.DeclaredBoxCount,
		&shipmentDB.DeclaredCbm,
		&shipmentDB.ConfirmedBoxCount,
		&shipmentDB.ConfirmedCbm,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workflow.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}
