//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_aggregates_get_test
package container_aggregates_get

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
	ContainerAggregates(ctx context.Context, containerID int64) (entities.AggregateTotals, error)
}
