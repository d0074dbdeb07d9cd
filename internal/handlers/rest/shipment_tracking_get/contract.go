//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_tracking_get_test
package shipment_tracking_get

import (
	"context"

	"freight/internal/entities"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListTrackingHistory(ctx context.Context, shipmentID int64) ([]entities.TrackingEvent, error)
	HasEverReached(ctx context.Context, shipmentID int64, line entities.StatusLine, status string) (bool, error)
}
