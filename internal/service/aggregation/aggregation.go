package aggregation

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

// Engine пересчитывает производные итоги (подтвержденный объем и число
// коробок) на уровне заявки и контейнера. Пересчет всегда выполняется
// синхронно на пути записи, внутри транзакции вызывающего: читающие
// запросы не платят за пересчет и видят значение, консистентное с
// последним коммитом.
type Engine struct {
	repository Repository
}

func New(repository Repository) *Engine {
	return &Engine{
		repository: repository,
	}
}

// RecomputeQuotationTotals идемпотентен: повторный вызов без промежуточных
// записей дает тот же результат.
func (e *Engine) RecomputeQuotationTotals(ctx context.Context, quotationID int64) (*entities.Quotation, error) {
	quotation, err := e.repository.RecomputeQuotationTotals(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("recompute quotation totals: %w", err)
	}
	return quotation, nil
}

func (e *Engine) RecomputeContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error) {
	totals, err := e.repository.RecomputeContainerTotals(ctx, containerID)
	if err != nil {
		return entities.AggregateTotals{}, fmt.Errorf("recompute container totals: %w", err)
	}
	return totals, nil
}

// QuotationAggregates читает кэшируемую проекцию без пересчета.
func (e *Engine) QuotationAggregates(ctx context.Context, quotationID int64) (entities.AggregateTotals, error) {
	totals, err := e.repository.GetQuotationTotals(ctx, quotationID)
	if err != nil {
		return entities.AggregateTotals{}, fmt.Errorf("get quotation totals: %w", err)
	}
	return totals, nil
}

func (e *Engine) ContainerAggregates(ctx context.Context, containerID int64) (entities.AggregateTotals, error) {
	totals, err := e.repository.GetContainerTotals(ctx, containerID)
	if err != nil {
		return entities.AggregateTotals{}, fmt.Errorf("get container totals: %w", err)
	}
	return totals, nil
}

// AuditQuotation сравнивает сохраненную проекцию с чистым пересчетом.
// Используется фоновой проверкой дрейфа; ничего не чинит.
func (e *Engine) AuditQuotation(ctx context.Context, quotationID int64) (stored, computed entities.AggregateTotals, err error) {
	stored, err = e.repository.GetQuotationTotals(ctx, quotationID)
	if err != nil {
		return stored, computed, fmt.Errorf("get quotation totals: %w", err)
	}

	shipments, err := e.repository.ListShipmentsByQuotation(ctx, quotationID)
	if err != nil {
		return stored, computed, fmt.Errorf("list shipments: %w", err)
	}

	computed = ComputeTotals(shipments)
	return stored, computed, nil
}

// ComputeTotals - чистая функция пересчета: в агрегат входят только
// отправки со статусом loaded. Тесты сверяют с ней кэшируемую проекцию.
func ComputeTotals(shipments []entities.ProviderShipment) entities.AggregateTotals {
	totals := entities.AggregateTotals{}
	for _, shipment := range shipments {
		if shipment.OriginStatus != entities.OriginLoaded {
			continue
		}
		totals.ConfirmedBoxCount += shipment.ConfirmedBoxCount
		totals.ConfirmedVolume += shipment.ConfirmedCbm
	}
	return totals
}

// Drift - расхождение сохраненной проекции с чистым пересчетом.
type Drift struct {
	QuotationID int64
	Stored      entities.AggregateTotals
	Computed    entities.AggregateTotals
}

// AuditAllQuotations прогоняет проверку дрейфа по всем заявкам.
// Только чтение: починка дрейфа - ручная операция.
func (e *Engine) AuditAllQuotations(ctx context.Context) ([]Drift, error) {
	ids, err := e.repository.ListQuotationIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotation ids: %w", err)
	}

	drifts := make([]Drift, 0)
	for _, id := range ids {
		stored, computed, err := e.AuditQuotation(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("audit quotation %d: %w", id, err)
		}
		if stored != computed {
			drifts = append(drifts, Drift{
				QuotationID: id,
				Stored:      stored,
				Computed:    computed,
			})
		}
	}
	return drifts, nil
}
