//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_range_post_test
package delivery_range_post

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
	CreateRange(ctx context.Context, dateID int64, startMinute, endMinute int, capacity int64) (*entities.DeliveryRange, error)
}
