//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotation_confirm_delete_test
package quotation_confirm_delete

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
	Withdraw(ctx context.Context, quotationID int64) (*entities.Quotation, error)
}
