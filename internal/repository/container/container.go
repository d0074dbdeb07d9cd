package container

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"freight/internal/entities"
	service "freight/internal/service/completion"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const containerColumns = `id, sequence_code, china_state, doc_state, manifest_ref, docs_ref,
	confirmed_box_count, confirmed_volume, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetContainerByID(ctx context.Context, id int64) (*entities.Container, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM containers
		WHERE id = $1
	`, containerColumns)

	var containerDB ContainerDB
	err := scanContainer(r.querier.QueryRow(ctx, query, id), &containerDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrContainerNotFound
		}
		return nil, fmt.Errorf("unexpected container repository get error: %w", err)
	}

	return ToDomain(&containerDB), nil
}

func (r *Repository) UpdateContainer(ctx context.Context, containerModifyEntity entities.ContainerModify) (*entities.Container, error) {
	containerModifyDB := FromDomainModify(&containerModifyEntity)

	builder := qb.
		Update("containers")

	// опциональные поля
	if containerModifyDB.SequenceCode != nil {
		builder = builder.Set("sequence_code", containerModifyDB.SequenceCode)
	}
	if containerModifyDB.ChinaState != nil {
		builder = builder.Set("china_state", containerModifyDB.ChinaState)
	}
	if containerModifyDB.DocState != nil {
		builder = builder.Set("doc_state", containerModifyDB.DocState)
	}
	if containerModifyDB.ManifestRef != nil {
		builder = builder.Set("manifest_ref", containerModifyDB.ManifestRef)
	}
	if containerModifyDB.DocsRef != nil {
		builder = builder.Set("docs_ref", containerModifyDB.DocsRef)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": containerModifyDB.ID}).
		Suffix("RETURNING " + containerColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected container repository update error: %w", err)
	}

	var containerDB ContainerDB
	err = scanContainer(r.querier.QueryRow(ctx, query, args...), &containerDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrContainerNotFound
		}
		return nil, fmt.Errorf("unexpected container repository update error: %w", err)
	}

	return ToDomain(&containerDB), nil
}

func (r *Repository) HasShipmentInCoordinationStatus(ctx context.Context, containerID int64, status entities.CoordinationStatusType) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM provider_shipments ps
			JOIN quotations q ON q.id = ps.quotation_id
			WHERE q.container_id = $1 AND ps.coordination_status = $2
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, containerID, status.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected container repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) CountOriginNonTerminal(ctx context.Context, containerID int64) (int64, error) {
	return r.countNonTerminal(ctx, containerID, sq.NotEq{"ps.origin_status": originTerminalStatuses()})
}

// CountCoordinationNonTerminal не учитывает поставки, выбывшие на китайской
// линии (origin not_selected): их координация заморожена навсегда и не должна
// блокировать закрытие документов контейнера.
func (r *Repository) CountCoordinationNonTerminal(ctx context.Context, containerID int64) (int64, error) {
	return r.countNonTerminal(ctx, containerID, sq.And{
		sq.NotEq{"ps.coordination_status": coordinationTerminalStatuses()},
		sq.NotEq{"ps.origin_status": entities.OriginNotSelected.String()},
	})
}

func (r *Repository) countNonTerminal(ctx context.Context, containerID int64, openCond sq.Sqlizer) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("provider_shipments ps").
		Join("quotations q ON q.id = ps.quotation_id").
		Where(sq.Eq{"q.container_id": containerID}).
		Where(openCond)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected container repository count error: %w", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected container repository count error: %w", err)
	}

	return count, nil
}

func originTerminalStatuses() []string {
	statuses := make([]string, 0)
	for _, status := range entities.OriginStatuses() {
		if status.IsTerminal() {
			statuses = append(statuses, status.String())
		}
	}
	return statuses
}

func coordinationTerminalStatuses() []string {
	statuses := make([]string, 0)
	for _, status := range entities.CoordinationStatuses() {
		if status.IsTerminal() {
			statuses = append(statuses, status.String())
		}
	}
	return statuses
}

func scanContainer(row pgx.Row, containerDB *ContainerDB) error {
	return row.Scan(
		&containerDB.ID,
		&containerDB.SequenceCode,
		&containerDB.ChinaState,
		&containerDB.DocState,
		&containerDB.ManifestRef,
		&containerDB.DocsRef,
		&containerDB.ConfirmedBoxCount,
		&containerDB.ConfirmedVolume,
		&containerDB.CreatedAt,
		&containerDB.UpdatedAt,
	)
}
