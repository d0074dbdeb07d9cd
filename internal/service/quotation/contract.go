//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotation_test
package quotation

import (
	"context"

	"freight/internal/entities"
)

type Repository interface {
	GetQuotationByID(ctx context.Context, id int64) (*entities.Quotation, error)
	UpdateQuotation(ctx context.Context, quotationModify entities.QuotationModify) (*entities.Quotation, error)
}

type AggregationService interface {
	RecomputeContainerTotals(ctx context.Context, containerID int64) (entities.AggregateTotals, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
