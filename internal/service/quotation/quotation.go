package quotation

import (
	"context"
	"fmt"

	"freight/internal/entities"
)

// Service управляет подтверждением заявок. Подтвержденность заявки
// определяет, входят ли ее отправки в итоги контейнера, поэтому смена
// флага и пересчет контейнерных итогов коммитятся вместе.
type Service struct {
	repository  Repository
	aggregation AggregationService
	txManager   TxManager
}

func New(repository Repository, aggregation AggregationService, txManager TxManager) *Service {
	return &Service{
		repository:  repository,
		aggregation: aggregation,
		txManager:   txManager,
	}
}

func (s *Service) Confirm(ctx context.Context, quotationID int64) (*entities.Quotation, error) {
	return s.setConfirmed(ctx, quotationID, true)
}

func (s *Service) Withdraw(ctx context.Context, quotationID int64) (*entities.Quotation, error) {
	return s.setConfirmed(ctx, quotationID, false)
}

func (s *Service) GetQuotation(ctx context.Context, quotationID int64) (*entities.Quotation, error) {
	quotation, err := s.repository.GetQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return quotation, nil
}

func (s *Service) setConfirmed(ctx context.Context, quotationID int64, confirmed bool) (*entities.Quotation, error) {
	updated := &entities.Quotation{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		quotation, err := s.repository.GetQuotationByID(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("get quotation: %w", err)
		}

		if quotation.Confirmed == confirmed {
			if confirmed {
				return ErrAlreadyConfirmed
			}
			return ErrNotConfirmed
		}

		updated, err = s.repository.UpdateQuotation(ctx, entities.QuotationModify{
			ID:        &quotationID,
			Confirmed: &confirmed,
		})
		if err != nil {
			return fmt.Errorf("update quotation: %w", err)
		}

		if _, err := s.aggregation.RecomputeContainerTotals(ctx, quotation.ContainerID); err != nil {
			return fmt.Errorf("recompute container totals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
