package workflow

import (
	"fmt"

	"freight/internal/entities"
)

// CanTransition решает, допустим ли переход current -> requested на линии line.
//
// Боковые ветки (not_selected, not_loaded, not_reserved, not_shipped) -
// терминальные негативные исходы, допустимые с любой точки линии, поэтому
// порядковая проверка на них не распространяется. Для остальных статусов
// переход разрешен только строго вперед: операционные данные приходят
// не по порядку и от разных людей, и молчаливый регресс (устаревшая форма
// перезаписывает loaded на contacted) портит агрегаты ниже по течению.
func CanTransition(line entities.StatusLine, current, requested string) (bool, error) {
	switch line {
	case entities.OriginLine:
		return canTransitionOrigin(
			entities.OriginStatusType(current),
			entities.OriginStatusType(requested),
		)
	case entities.CoordinationLine:
		return canTransitionCoordination(
			entities.CoordinationStatusType(current),
			entities.CoordinationStatusType(requested),
		)
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidLine, line)
	}
}

func canTransitionOrigin(current, requested entities.OriginStatusType) (bool, error) {
	currentOrd, ok := current.Ordinal()
	if !ok {
		return false, fmt.Errorf("%w: origin %q", ErrUnknownStatus, current)
	}
	requestedOrd, ok := requested.Ordinal()
	if !ok {
		return false, fmt.Errorf("%w: origin %q", ErrUnknownStatus, requested)
	}

	if requested.IsSideBranch() {
		return true, nil
	}
	return requestedOrd > currentOrd, nil
}

func canTransitionCoordination(current, requested entities.CoordinationStatusType) (bool, error) {
	currentOrd, ok := current.Ordinal()
	if !ok {
		return false, fmt.Errorf("%w: coordination %q", ErrUnknownStatus, current)
	}
	requestedOrd, ok := requested.Ordinal()
	if !ok {
		return false, fmt.Errorf("%w: coordination %q", ErrUnknownStatus, requested)
	}

	if requested.IsSideBranch() {
		return true, nil
	}
	return requestedOrd > currentOrd, nil
}
