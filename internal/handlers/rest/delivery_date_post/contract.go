//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_date_post_test
package delivery_date_post

import (
	"context"
	"time"

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
	CreateDate(ctx context.Context, containerID int64, day time.Time) (*entities.DeliveryDate, error)
}
