//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_assign_post_test
package slot_assign_post

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
	Assign(ctx context.Context, quotationID, rangeID int64) (*entities.RangeAssignment, error)
}
