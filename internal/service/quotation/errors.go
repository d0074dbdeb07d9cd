package quotation

import "errors"

var (
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrAlreadyConfirmed  = errors.New("quotation is already confirmed")
	ErrNotConfirmed      = errors.New("quotation is not confirmed")
)
