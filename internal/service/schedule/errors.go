package schedule

import "errors"

var (
	ErrInvalidRange    = errors.New("invalid delivery range")
	ErrInvalidCapacity = errors.New("invalid range capacity")
	ErrInvalidDay      = errors.New("invalid delivery day")

	ErrRangeOverlap          = errors.New("range overlaps an existing range on this date")
	ErrCapacityBelowAssigned = errors.New("capacity is below current assignment count")
	ErrSlotFull              = errors.New("range has no remaining capacity")
	ErrHasAssignments        = errors.New("deletion blocked by existing assignments")
	ErrDuplicateAssignment   = errors.New("quotation already holds an assignment for this container")

	ErrContainerNotFound  = errors.New("container not found")
	ErrDateNotFound       = errors.New("delivery date not found")
	ErrRangeNotFound      = errors.New("delivery range not found")
	ErrAssignmentNotFound = errors.New("range assignment not found")
)
