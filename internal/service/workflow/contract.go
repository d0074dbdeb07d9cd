//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workflow_test
package workflow

import (
	"context"
	"time"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ProviderShipmentModify) (*entities.ProviderShipment, error)
	GetShipmentByID(ctx context.Context, id int64) (*entities.ProviderShipment, error)
	UpdateShipment(ctx context.Context, shipmentModify entities.ProviderShipmentModify) (*entities.ProviderShipment, error)
}

type Ledger interface {
	Append(ctx context.Context, event entities.TrackingEvent) (int64, error)
	HasStatus(ctx context.Context, shipmentID int64, line entities.StatusLine, status string) (bool, error)
	ListByShipment(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error)
}

type QuotationReader interface {
	GetQuotationByID(ctx context.Context, id int64) (*entities.Quotation, error)
}

type AggregationService interface {
	RecomputeQuotationTotals(ctx context.Context, quotationID int64) (*entities.Quotation, error)
	RecomputeContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error)
}

type CompletionService interface {
	Evaluate(ctx context.Context, containerID int64) (*entities.ContainerState, error)
}

// Notifier - внешний диспетчер уведомлений. Ошибки отправки логируются
// и никогда не откатывают сам переход.
type Notifier interface {
	Notify(ctx context.Context, notification entities.StatusNotification) error
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecuteFn применяет входящий статус к отправке на заранее выбранной линии.
type ExecuteFn func(ctx context.Context, shipmentID int64, status string) error

type HandlerFactory interface {
	GetHandler(line entities.StatusLine) (ExecuteFn, error)
}
