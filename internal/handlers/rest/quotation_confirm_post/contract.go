//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotation_confirm_post_test
package quotation_confirm_post

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
	Confirm(ctx context.Context, quotationID int64) (*entities.Quotation, error)
}
