//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=aggregation_test
package aggregation

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	// RecomputeQuotationTotals выполняет пересчет одним UPDATE ... FROM SELECT
	// и возвращает заявку с обновленными итогами.
	RecomputeQuotationTotals(ctx context.Context, quotationID int64) (*entities.Quotation, error)
	RecomputeContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error)

	GetQuotationTotals(ctx context.Context, quotationID int64) (entities.AggregateTotals, error)
	GetContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error)

	ListShipmentsByQuotation(ctx context.Context, quotationID int64) ([]entities.ProviderShipment, error)
	ListQuotationIDs(ctx context.Context) ([]int64, error)
}
