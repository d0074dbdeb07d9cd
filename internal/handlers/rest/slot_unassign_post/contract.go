//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_unassign_post_test
package slot_unassign_post

import (
	"context"

	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Unassign(ctx context.Context, quotationID, containerID int64) error
}
