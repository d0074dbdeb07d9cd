//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=completion_test
package completion

import (
	"context"

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
	GetContainerByID(ctx context.Context, id int64) (*entities.Container, error)
	UpdateContainer(ctx context.Context, containerModify entities.ContainerModify) (*entities.Container, error)

	// HasShipmentInCoordinationStatus смотрит на текущие статусы отправок
	// контейнера, без учета журнала.
	HasShipmentInCoordinationStatus(ctx context.Context, containerID int64, status entities.CoordinationStatusType) (bool, error)

	CountOriginNonTerminal(ctx context.Context, containerID int64) (int64, error)
	CountCoordinationNonTerminal(ctx context.Context, containerID int64) (int64, error)
}

// ArtifactStore - внешнее хранилище артефактов. Бинарное содержимое вне
// зоны ответственности ядра, здесь только ссылки.
type ArtifactStore interface {
	Exists(ctx context.Context, ref string) (bool, error)
	URLFor(ref string) string
	Delete(ctx context.Context, ref string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
