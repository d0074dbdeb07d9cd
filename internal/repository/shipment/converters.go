package shipment

import "freight/internal/entities"

func ToDomain(s *ProviderShipmentDB) *entities.ProviderShipment {
	if s == nil {
		return nil
	}
	return &entities.ProviderShipment{
		ID:                 s.ID,
		QuotationID:        s.QuotationID,
		SupplierName:       s.SupplierName,
		SupplierPhone:      s.SupplierPhone,
		OriginStatus:       entities.OriginStatusType(s.OriginStatus),
		CoordinationStatus: entities.CoordinationStatusType(s.CoordinationStatus),
		DeclaredBoxCount:   s.DeclaredBoxCount,
		DeclaredCbm:        s.DeclaredCbm,
		ConfirmedBoxCount:  s.ConfirmedBoxCount,
		ConfirmedCbm:       s.ConfirmedCbm,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FromDomainModify(s *entities.ProviderShipmentModify) *ProviderShipmentModifyDB {
	if s == nil {
		return nil
	}
	modifyDB := &ProviderShipmentModifyDB{
		ID:                 s.ID,
		QuotationID:        s.QuotationID,
		SupplierName:       s.SupplierName,
		SupplierPhone:      s.SupplierPhone,
		DeclaredBoxCount:   s.DeclaredBoxCount,
		DeclaredCbm:        s.DeclaredCbm,
		ConfirmedBoxCount:  s.ConfirmedBoxCount,
		ConfirmedCbm:       s.ConfirmedCbm,
	}

	if s.OriginStatus != nil {
		status := s.OriginStatus.String()
		modifyDB.OriginStatus = &status
	}
	if s.CoordinationStatus != nil {
		status := s.CoordinationStatus.String()
		modifyDB.CoordinationStatus = &status
	}

	return modifyDB
}
