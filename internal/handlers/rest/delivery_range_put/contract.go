//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_range_put_test
package delivery_range_put

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
	UpdateRange(ctx context.Context, rangeID int64, startMinute, endMinute int, capacity int64) (*entities.DeliveryRange, error)
}
