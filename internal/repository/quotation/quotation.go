package quotation

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	service "freight/internal/service/quotation"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const quotationColumns = `id, container_id, customer_name, customer_phone, billing_address,
	confirmed, confirmed_box_count, confirmed_volume, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetQuotationByID(ctx context.Context, id int64) (*entities.Quotation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM quotations
		WHERE id = $1
	`, quotationColumns)

	var quotationDB QuotationDB
	err := scanQuotation(r.querier.QueryRow(ctx, query, id), &quotationDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("unexpected quotation repository get error: %w", err)
	}

	return ToDomain(&quotationDB), nil
}

func (r *Repository) UpdateQuotation(ctx context.Context, quotationModifyEntity entities.QuotationModify) (*entities.Quotation, error) {
	quotationModifyDB := FromDomainModify(&quotationModifyEntity)

	builder := qb.
		Update("quotations")

	// опциональные поля
	if quotationModifyDB.CustomerName != nil {
		builder = builder.Set("customer_name", quotationModifyDB.CustomerName)
	}
	if quotationModifyDB.CustomerPhone != nil {
		builder = builder.Set("customer_phone", quotationModifyDB.CustomerPhone)
	}
	if quotationModifyDB.BillingAddress != nil {
		builder = builder.Set("billing_address", quotationModifyDB.BillingAddress)
	}
	if quotationModifyDB.Confirmed != nil {
		builder = builder.Set("confirmed", quotationModifyDB.Confirmed)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": quotationModifyDB.ID}).
		Suffix("RETURNING " + quotationColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected quotation repository update error: %w", err)
	}

	var quotationDB QuotationDB
	err = scanQuotation(r.querier.QueryRow(ctx, query, args...), &quotationDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("unexpected quotation repository update error: %w", err)
	}

	return ToDomain(&quotationDB), nil
}

func scanQuotation(row pgx.Row, quotationDB *QuotationDB) error {
	return row.Scan(
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
}
