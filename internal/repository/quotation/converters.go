package quotation

import "freight/internal/entities"

func ToDomain(q *QuotationDB) *entities.Quotation {
	if q == nil {
		return nil
	}
	return &entities.Quotation{
		ID:                q.ID,
		ContainerID:       q.ContainerID,
		CustomerName:      q.CustomerName,
		CustomerPhone:     q.CustomerPhone,
		BillingAddress:    q.BillingAddress,
		Confirmed:         q.Confirmed,
		ConfirmedBoxCount: q.ConfirmedBoxCount,
		ConfirmedVolume:   q.ConfirmedVolume,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func FromDomainModify(q *entities.QuotationModify) *QuotationModifyDB {
	if q == nil {
		return nil
	}
	return &QuotationModifyDB{
		ID:             q.ID,
		ContainerID:    q.ContainerID,
		CustomerName:   q.CustomerName,
		CustomerPhone:  q.CustomerPhone,
		BillingAddress: q.BillingAddress,
		Confirmed:      q.Confirmed,
	}
}
