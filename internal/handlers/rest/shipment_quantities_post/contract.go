//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_quantities_post_test
package shipment_quantities_post

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
	SetConfirmedQuantities(ctx context.Context, shipmentID int64, boxCount int64, cbm float64) (*entities.ProviderShipment, error)
}
