package workflow

import "errors"

var (
	ErrInvalidLine   = errors.New("unknown status line")
	ErrUnknownStatus = errors.New("unknown status value")

	ErrInvalidTransition = errors.New("status transition rejected")
	ErrShipmentNotFound  = errors.New("provider shipment not found")
	ErrQuotationNotFound = errors.New("quotation not found")

	ErrNotYetReceived    = errors.New("confirmed quantities require received status")
	ErrInvalidQuantities = errors.New("invalid confirmed quantities")
	ErrInvalidShipment   = errors.New("invalid shipment payload")
)
