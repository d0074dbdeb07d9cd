package aggregates_audit

import (
	"context"
	"time"

	"freight/internal/service/aggregation"
	"freight/pkg/logger"
)

type Service interface {
	AuditAllQuotations(ctx context.Context) ([]aggregation.Drift, error)
}

// AggregatesAudit периодически сверяет кэшируемые проекции заявок с чистым
// пересчетом и логирует дрейф. Только чтение, починка дрейфа - ручная операция.
type AggregatesAudit struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAggregatesAudit(log logger.Logger, service Service, interval time.Duration) *AggregatesAudit {
	return &AggregatesAudit{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AggregatesAudit) TTL() time.Duration {
	return a.interval
}

func (a *AggregatesAudit) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	drifts, err := a.service.AuditAllQuotations(ctxWithTimeout)
	if err != nil {
		return err
	}

	for _, drift := range drifts {
		a.log.With(
			logger.NewField("quotation", drift.QuotationID),
			logger.NewField("stored_boxes", drift.Stored.ConfirmedBoxCount),
			logger.NewField("stored_volume", drift.Stored.ConfirmedVolume),
			logger.NewField("computed_boxes", drift.Computed.ConfirmedBoxCount),
			logger.NewField("computed_volume", drift.Computed.ConfirmedVolume),
		).Warn("aggregates audit drift detected")
	}

	if len(drifts) > 0 {
		a.log.With(
			logger.NewField("drifted_quotations", len(drifts)),
		).Info("aggregates audit")
	}

	return nil
}

func (a *AggregatesAudit) Info() string {
	return "aggregates audit"
}
