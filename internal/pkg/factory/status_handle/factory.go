package status_handle

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/internal/service/workflow"
)

type TransitionService interface {
	TransitionShipment(ctx context.Context, shipmentID int64, line entities.StatusLine, newStatus string) (*entities.StatusTransition, error)
}

type StatusHandlerFactory struct {
	workflowService TransitionService
}

func NewStatusHandlerFactory(workflowService TransitionService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		workflowService: workflowService,
	}
}

func (f *StatusHandlerFactory) GetHandler(line entities.StatusLine) (workflow.ExecuteFn, error) {
	switch line {
	case entities.OriginLine:
		return f.originHandler, nil
	case entities.CoordinationLine:
		return f.coordinationHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", workflow.ErrInvalidLine, line)
	}
}

func (f *StatusHandlerFactory) originHandler(ctx context.Context, shipmentID int64, status string) error {
	_, err := f.workflowService.TransitionShipment(ctx, shipmentID, entities.OriginLine, status)
	if err != nil {
		return fmt.Errorf("apply origin status %q to shipment %d: %w", status, shipmentID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) coordinationHandler(ctx context.Context, shipmentID int64, status string) error {
	_, err := f.workflowService.TransitionShipment(ctx, shipmentID, entities.CoordinationLine, status)
	if err != nil {
		return fmt.Errorf("apply coordination status %q to shipment %d: %w", status, shipmentID, err)
	}
	return nil
}
