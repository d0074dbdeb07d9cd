//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"freight/internal/entities"
)

type Repository interface {
	CreateDate(ctx context.Context, containerID int64, day time.Time) (*entities.DeliveryDate, error)
	GetDateByID(ctx context.Context, dateID int64) (*entities.DeliveryDate, error)
	DeleteDate(ctx context.Context, dateID int64) error

	CreateRange(ctx context.Context, rangeModify entities.DeliveryRangeModify) (*entities.DeliveryRange, error)
	// GetRangeByIDForUpdate берет блокировку строки окна: проверка вместимости
	// и вставка брони должны быть одной атомарной единицей.
	GetRangeByIDForUpdate(ctx context.Context, rangeID int64) (*entities.DeliveryRange, error)
	ListRangesByDate(ctx context.Context, dateID int64) ([]entities.DeliveryRange, error)
	UpdateRange(ctx context.Context, rangeModify entities.DeliveryRangeModify) (*entities.DeliveryRange, error)
	DeleteRange(ctx context.Context, rangeID int64) error

	CountAssignmentsByRange(ctx context.Context, rangeID int64) (int64, error)
	CountAssignmentsByDate(ctx context.Context, dateID int64) (int64, error)
	CreateAssignment(ctx context.Context, rangeID, quotationID, containerID int64) (*entities.RangeAssignment, error)
	DeleteAssignment(ctx context.Context, quotationID, containerID int64) error

	ListSlots(ctx context.Context, containerID int64) ([]entities.SlotAvailability, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// DoReadCommitted нужен потокам, сериализуемым блокировкой строки окна:
	// после захвата блокировки счетчик броней должен видеть коммиты
	// конкурентов, а не снимок до ожидания.
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
