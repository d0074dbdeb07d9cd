package workflow

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"freight/internal/entities"
	"freight/pkg/logger"
)

// Service проводит статусные переходы отправок: проверка допустимости,
// запись в журнал, обновление текущего статуса, пересчет агрегатов и
// переоценка макро-статуса контейнера - все в одной транзакции.
type Service struct {
	log         serviceLogger
	repository  Repository
	ledger      Ledger
	quotations  QuotationReader
	aggregation AggregationService
	completion  CompletionService
	notifier    Notifier
	clock       Clock
	txManager   TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	ledger Ledger,
	quotations QuotationReader,
	aggregation AggregationService,
	completion CompletionService,
	notifier Notifier,
	clock Clock,
	txManager TxManager,
) *Service {
	return &Service{
		log:         log,
		repository:  repository,
		ledger:      ledger,
		quotations:  quotations,
		aggregation: aggregation,
		completion:  completion,
		notifier:    notifier,
		clock:       clock,
		txManager:   txManager,
	}
}

// TransitionShipment применяет запрошенный статус к отправке.
// Регресс по упорядоченной линии отклоняется с ErrInvalidTransition,
// текущий статус при этом возвращается вызывающему для повторного выбора.
func (s *Service) TransitionShipment(
	ctx context.Context,
	shipmentID int64,
	line entities.StatusLine,
	newStatus string,
) (*entities.StatusTransition, error) {
	if !line.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}

	transition := entities.StatusTransition{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetShipmentByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		oldStatus := currentStatusOnLine(shipment, line)

		allowed, err := CanTransition(line, oldStatus, newStatus)
		if err != nil {
			return err
		}
		if !allowed {
			return fmt.Errorf("%w: %s line, %s -> %s", ErrInvalidTransition, line, oldStatus, newStatus)
		}

		occurredAt := s.clock.Now()
		ledgerEntryID, err := s.ledger.Append(ctx, entities.TrackingEvent{
			ShipmentID: shipmentID,
			Line:       line,
			Status:     newStatus,
			OccurredAt: occurredAt,
		})
		if err != nil {
			return fmt.Errorf("append tracking event: %w", err)
		}

		if _, err := s.repository.UpdateShipment(ctx, shipmentStatusModify(shipmentID, line, newStatus)); err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}

		containerID, err := s.refreshDerivedState(ctx, shipment, line, oldStatus, newStatus)
		if err != nil {
			return err
		}

		if _, err := s.completion.Evaluate(ctx, containerID); err != nil {
			return fmt.Errorf("evaluate container state: %w", err)
		}

		transition = entities.StatusTransition{
			ShipmentID:    shipmentID,
			Line:          line,
			OldStatus:     oldStatus,
			NewStatus:     newStatus,
			LedgerEntryID: ledgerEntryID,
			OccurredAt:    occurredAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchNotification(ctx, transition)
	return &transition, nil
}

// HasEverReached отвечает на предикат "отправка когда-либо была в статусе X"
// по журналу, независимо от того, куда текущий статус ушел дальше.
func (s *Service) HasEverReached(
	ctx context.Context,
	shipmentID int64,
	line entities.StatusLine,
	status string,
) (bool, error) {
	if _, err := validateStatusOnLine(line, status); err != nil {
		return false, err
	}

	reached, err := s.ledger.HasStatus(ctx, shipmentID, line, status)
	if err != nil {
		return false, fmt.Errorf("ledger lookup: %w", err)
	}
	return reached, nil
}

func (s *Service) ListTrackingHistory(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error) {
	events, err := s.ledger.ListByShipment(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	return events, nil
}

// RegisterShipment заводит отправку поставщика в заявке. Стартовые статусы
// линий проставляет хранилище (not_contacted, labeled); журнал стартовую
// точку не фиксирует, движение начинается с первого перехода.
func (s *Service) RegisterShipment(
	ctx context.Context,
	quotationID int64,
	supplierName, supplierPhone string,
	declaredBoxCount int64,
	declaredCbm float64,
) (*entities.ProviderShipment, error) {
	if supplierName == "" {
		return nil, fmt.Errorf("%w: empty supplier name", ErrInvalidShipment)
	}
	if declaredBoxCount < 0 || declaredCbm < 0 {
		return nil, fmt.Errorf("%w: negative declared quantities", ErrInvalidShipment)
	}

	created, err := s.repository.Create(ctx, entities.ProviderShipmentModify{
		QuotationID:      pointer.To(quotationID),
		SupplierName:     pointer.To(supplierName),
		SupplierPhone:    pointer.To(supplierPhone),
		DeclaredBoxCount: pointer.To(declaredBoxCount),
		DeclaredCbm:      pointer.To(declaredCbm),
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return created, nil
}

// SetConfirmedQuantities фиксирует подтвержденные количества после физической
// приемки. Приемка подтверждается журналом (origin received), а не порядковым
// номером текущего статуса: боковые ветки стоят дальше received по таблице,
// но приемкой не являются.
func (s *Service) SetConfirmedQuantities(
	ctx context.Context,
	shipmentID int64,
	boxCount int64,
	cbm float64,
) (*entities.ProviderShipment, error) {
	if boxCount < 0 || cbm < 0 {
		return nil, ErrInvalidQuantities
	}

	var updated *entities.ProviderShipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetShipmentByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		received, err := s.ledger.HasStatus(ctx, shipmentID, entities.OriginLine, entities.OriginReceived.String())
		if err != nil {
			return fmt.Errorf("ledger lookup: %w", err)
		}
		if !received {
			return fmt.Errorf("%w: current origin status %s", ErrNotYetReceived, shipment.OriginStatus)
		}

		updated, err = s.repository.UpdateShipment(ctx, entities.ProviderShipmentModify{
			ID:                &shipmentID,
			ConfirmedBoxCount: &boxCount,
			ConfirmedCbm:      &cbm,
		})
		if err != nil {
			return fmt.Errorf("update confirmed quantities: %w", err)
		}

		// Количества попадают в агрегаты только у погруженных отправок.
		if shipment.OriginStatus != entities.OriginLoaded {
			return nil
		}

		quotation, err := s.aggregation.RecomputeQuotationTotals(ctx, shipment.QuotationID)
		if err != nil {
			return fmt.Errorf("recompute quotation totals: %w", err)
		}
		if _, err := s.aggregation.RecomputeContainerTotals(ctx, quotation.ContainerID); err != nil {
			return fmt.Errorf("recompute container totals: %w", err)
		}
		if _, err := s.completion.Evaluate(ctx, quotation.ContainerID); err != nil {
			return fmt.Errorf("evaluate container state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// refreshDerivedState пересчитывает кэшируемые агрегаты, если переход
// изменил принадлежность отправки к множеству loaded. Возвращает id
// контейнера для последующей переоценки макро-статуса.
func (s *Service) refreshDerivedState(
	ctx context.Context,
	shipment *entities.ProviderShipment,
	line entities.StatusLine,
	oldStatus, newStatus string,
) (int64, error) {
	affectsLoaded := line == entities.OriginLine &&
		(oldStatus == entities.OriginLoaded.String() || newStatus == entities.OriginLoaded.String())

	if !affectsLoaded {
		quotation, err := s.quotations.GetQuotationByID(ctx, shipment.QuotationID)
		if err != nil {
			return 0, fmt.Errorf("get quotation: %w", err)
		}
		return quotation.ContainerID, nil
	}

	quotation, err := s.aggregation.RecomputeQuotationTotals(ctx, shipment.QuotationID)
	if err != nil {
		return 0, fmt.Errorf("recompute quotation totals: %w", err)
	}
	if _, err := s.aggregation.RecomputeContainerTotals(ctx, quotation.ContainerID); err != nil {
		return 0, fmt.Errorf("recompute container totals: %w", err)
	}
	return quotation.ContainerID, nil
}

func (s *Service) dispatchNotification(ctx context.Context, transition entities.StatusTransition) {
	err := s.notifier.Notify(ctx, entities.StatusNotification{
		EntityType: "provider_shipment",
		EntityID:   transition.ShipmentID,
		Line:       transition.Line,
		OldStatus:  transition.OldStatus,
		NewStatus:  transition.NewStatus,
	})
	if err != nil {
		s.log.Warn("notification dispatch failed",
			logger.NewField("error", err),
			logger.NewField("shipment", transition.ShipmentID),
			logger.NewField("line", transition.Line.String()),
		)
	}
}

func currentStatusOnLine(shipment *entities.ProviderShipment, line entities.StatusLine) string {
	if line == entities.OriginLine {
		return shipment.OriginStatus.String()
	}
	return shipment.CoordinationStatus.String()
}

func shipmentStatusModify(shipmentID int64, line entities.StatusLine, newStatus string) entities.ProviderShipmentModify {
	modify := entities.ProviderShipmentModify{ID: &shipmentID}
	if line == entities.OriginLine {
		status := entities.OriginStatusType(newStatus)
		modify.OriginStatus = &status
		return modify
	}
	status := entities.CoordinationStatusType(newStatus)
	modify.CoordinationStatus = &status
	return modify
}

func validateStatusOnLine(line entities.StatusLine, status string) (int, error) {
	switch line {
	case entities.OriginLine:
		ord, ok := entities.OriginStatusType(status).Ordinal()
		if !ok {
			return 0, fmt.Errorf("%w: origin %q", ErrUnknownStatus, status)
		}
		return ord, nil
	case entities.CoordinationLine:
		ord, ok := entities.CoordinationStatusType(status).Ordinal()
		if !ok {
			return 0, fmt.Errorf("%w: coordination %q", ErrUnknownStatus, status)
		}
		return ord, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}
}
