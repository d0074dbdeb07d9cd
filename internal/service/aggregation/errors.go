package aggregation

import "errors"

var (
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrContainerNotFound = errors.New("container not found")
)
