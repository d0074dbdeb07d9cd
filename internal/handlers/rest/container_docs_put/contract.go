//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=container_docs_put_test
package container_docs_put

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
	AttachDocs(ctx context.Context, containerID int64, ref string) (*entities.ContainerState, error)
}
