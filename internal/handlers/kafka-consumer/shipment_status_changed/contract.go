package shipment_status_changed

import (
	"freight/internal/entities"
	"freight/internal/service/workflow"
	"freight/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(line entities.StatusLine) (workflow.ExecuteFn, error)
}
