package schedule

import (
	"context"
	"fmt"
	"time"

	"freight/internal/entities"
)

// Scheduler управляет двухуровневым календарем выдачи (даты -> окна с
// конечной вместимостью) и бронированием окон заявками. Вместимость -
// физическое ограничение пропускной способности склада, поэтому проверка
// остатка и вставка брони выполняются одной транзакцией под блокировкой
// строки окна: две одновременные брони последнего места не должны пройти обе.
type Scheduler struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Scheduler {
	return &Scheduler{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Scheduler) CreateDate(ctx context.Context, containerID int64, day time.Time) (*entities.DeliveryDate, error) {
	if day.IsZero() {
		return nil, ErrInvalidDay
	}

	date, err := s.repository.CreateDate(ctx, containerID, day)
	if err != nil {
		return nil, fmt.Errorf("create delivery date: %w", err)
	}
	return date, nil
}

func (s *Scheduler) DeleteDate(ctx context.Context, dateID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		assigned, err := s.repository.CountAssignmentsByDate(ctx, dateID)
		if err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if assigned > 0 {
			return fmt.Errorf("%w: %d on date", ErrHasAssignments, assigned)
		}

		if err := s.repository.DeleteDate(ctx, dateID); err != nil {
			return fmt.Errorf("delete date: %w", err)
		}
		return nil
	})
}

func (s *Scheduler) CreateRange(
	ctx context.Context,
	dateID int64,
	startMinute, endMinute int,
	capacity int64,
) (*entities.DeliveryRange, error) {
	if !isValidRangeBounds(startMinute, endMinute) {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, startMinute, endMinute)
	}
	if !isValidCapacity(capacity) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	created := &entities.DeliveryRange{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		candidate := entities.DeliveryRange{StartMinute: startMinute, EndMinute: endMinute}
		if err := s.checkOverlap(ctx, dateID, candidate, 0); err != nil {
			return err
		}

		var err error
		created, err = s.repository.CreateRange(ctx, entities.DeliveryRangeModify{
			DateID:      &dateID,
			StartMinute: &startMinute,
			EndMinute:   &endMinute,
			Capacity:    &capacity,
		})
		if err != nil {
			return fmt.Errorf("create range: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRange пересматривает границы и вместимость окна. Вместимость
// нельзя опустить ниже уже выданных броней, пересечения проверяются
// против соседей без учета самого окна.
func (s *Scheduler) UpdateRange(
	ctx context.Context,
	rangeID int64,
	startMinute, endMinute int,
	capacity int64,
) (*entities.DeliveryRange, error) {
	if !isValidRangeBounds(startMinute, endMinute) {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, startMinute, endMinute)
	}
	if !isValidCapacity(capacity) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	updated := &entities.DeliveryRange{}
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetRangeByIDForUpdate(ctx, rangeID)
		if err != nil {
			return fmt.Errorf("lock range: %w", err)
		}

		assigned, err := s.repository.CountAssignmentsByRange(ctx, rangeID)
		if err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if capacity < assigned {
			return fmt.Errorf("%w: capacity %d, assigned %d", ErrCapacityBelowAssigned, capacity, assigned)
		}

		candidate := entities.DeliveryRange{StartMinute: startMinute, EndMinute: endMinute}
		if err := s.checkOverlap(ctx, current.DateID, candidate, rangeID); err != nil {
			return err
		}

		updated, err = s.repository.UpdateRange(ctx, entities.DeliveryRangeModify{
			ID:          &rangeID,
			StartMinute: &startMinute,
			EndMinute:   &endMinute,
			Capacity:    &capacity,
		})
		if err != nil {
			return fmt.Errorf("update range: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Scheduler) DeleteRange(ctx context.Context, rangeID int64) error {
	return s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		if _, err := s.repository.GetRangeByIDForUpdate(ctx, rangeID); err != nil {
			return fmt.Errorf("lock range: %w", err)
		}

		assigned, err := s.repository.CountAssignmentsByRange(ctx, rangeID)
		if err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if assigned > 0 {
			return fmt.Errorf("%w: %d on range", ErrHasAssignments, assigned)
		}

		if err := s.repository.DeleteRange(ctx, rangeID); err != nil {
			return fmt.Errorf("delete range: %w", err)
		}
		return nil
	})
}

// Assign бронирует окно за заявкой. Повторная бронь в рамках того же
// контейнера отклоняется: перебронирование - это явный Unassign + Assign.
//
// Транзакция read committed: сериализацию дает блокировка строки окна,
// а проигравший конкурентную бронь должен увидеть закоммиченную вставку
// победителя и получить ErrSlotFull, а не ошибку сериализации.
func (s *Scheduler) Assign(ctx context.Context, quotationID, rangeID int64) (*entities.RangeAssignment, error) {
	assignment := &entities.RangeAssignment{}
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		rng, err := s.repository.GetRangeByIDForUpdate(ctx, rangeID)
		if err != nil {
			return fmt.Errorf("lock range: %w", err)
		}

		date, err := s.repository.GetDateByID(ctx, rng.DateID)
		if err != nil {
			return fmt.Errorf("get date: %w", err)
		}

		assigned, err := s.repository.CountAssignmentsByRange(ctx, rangeID)
		if err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if assigned >= rng.Capacity {
			return fmt.Errorf("%w: capacity %d", ErrSlotFull, rng.Capacity)
		}

		assignment, err = s.repository.CreateAssignment(ctx, rangeID, quotationID, date.ContainerID)
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *Scheduler) Unassign(ctx context.Context, quotationID, containerID int64) error {
	err := s.repository.DeleteAssignment(ctx, quotationID, containerID)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// ListAvailableSlots возвращает календарь контейнера с остатками мест.
// Заполненные окна по умолчанию скрываются.
func (s *Scheduler) ListAvailableSlots(ctx context.Context, containerID int64, includeFull bool) ([]entities.SlotAvailability, error) {
	slots, err := s.repository.ListSlots(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	if includeFull {
		return slots, nil
	}

	open := make([]entities.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		if slot.Available > 0 {
			open = append(open, slot)
		}
	}
	return open, nil
}

func (s *Scheduler) checkOverlap(
	ctx context.Context,
	dateID int64,
	candidate entities.DeliveryRange,
	excludeRangeID int64,
) error {
	siblings, err := s.repository.ListRangesByDate(ctx, dateID)
	if err != nil {
		return fmt.Errorf("list sibling ranges: %w", err)
	}

	for _, sibling := range siblings {
		if sibling.ID == excludeRangeID {
			continue
		}
		if candidate.Overlaps(sibling) {
			return fmt.Errorf("%w: range %d [%d, %d)", ErrRangeOverlap, sibling.ID, sibling.StartMinute, sibling.EndMinute)
		}
	}
	return nil
}
