//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_state_get_test
package container_state_get

import (
	"context"

	"freight/internal/service/completion"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ContainerState(ctx context.Context, containerID int64) (*completion.StateView, error)
}
