package entities

import "time"

// ProviderShipment - физическая отправка поставщика внутри заявки (Quotation).
// У отправки две независимые статусные линии: прогресс в стране отправления
// (OriginStatus) и прогресс координации в стране назначения (CoordinationStatus).
type ProviderShipment struct {
	ID                 int64
	QuotationID        int64
	SupplierName       string
	SupplierPhone      string
	OriginStatus       OriginStatusType
	CoordinationStatus CoordinationStatusType
	DeclaredBoxCount   int64
	DeclaredCbm        float64
	ConfirmedBoxCount  int64
	ConfirmedCbm       float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ProviderShipmentModify struct {
	ID                 *int64
	QuotationID        *int64
	SupplierName       *string
	SupplierPhone      *string
	OriginStatus       *OriginStatusType
	CoordinationStatus *CoordinationStatusType
	DeclaredBoxCount   *int64
	DeclaredCbm        *float64
	ConfirmedBoxCount  *int64
	ConfirmedCbm       *float64
}

// StatusLine идентифицирует одну из двух статусных линий отправки.
type StatusLine string

const (
	OriginLine       StatusLine = "origin"
	CoordinationLine StatusLine = "coordination"
)

func (l StatusLine) String() string {
	return string(l)
}

func (l StatusLine) IsValid() bool {
	return l == OriginLine || l == CoordinationLine
}

type OriginStatusType string

const (
	OriginNotContacted OriginStatusType = "not_contacted"
	OriginContacted    OriginStatusType = "contacted"
	OriginReceived     OriginStatusType = "received"
	OriginNotSelected  OriginStatusType = "not_selected"
	OriginInspection   OriginStatusType = "inspection"
	OriginLoaded       OriginStatusType = "loaded"
	OriginNotLoaded    OriginStatusType = "not_loaded"
)

const DefaultOriginStatus = OriginNotContacted

// Порядковые номера фиксированы: линия строго упорядочена, регресс запрещён.
// Боковые ветки (not_selected, not_loaded) занимают свои номера в таблице,
// но прогресс-точками не являются - см. IsSideBranch.
var originOrdinals = map[OriginStatusType]int{
	OriginNotContacted: 0,
	OriginContacted:    1,
	OriginReceived:     2,
	OriginNotSelected:  3,
	OriginInspection:   4,
	OriginLoaded:       5,
	OriginNotLoaded:    6,
}

// OriginStatuses возвращает все статусы линии в порядке возрастания номеров.
func OriginStatuses() []OriginStatusType {
	return []OriginStatusType{
		OriginNotContacted,
		OriginContacted,
		OriginReceived,
		OriginNotSelected,
		OriginInspection,
		OriginLoaded,
		OriginNotLoaded,
	}
}

func (s OriginStatusType) String() string {
	return string(s)
}

func (s OriginStatusType) Ordinal() (int, bool) {
	ord, ok := originOrdinals[s]
	return ord, ok
}

func (s OriginStatusType) IsValid() bool {
	_, ok := originOrdinals[s]
	return ok
}

// IsSideBranch - терминальный негативный исход, достижимый с любой точки линии.
func (s OriginStatusType) IsSideBranch() bool {
	return s == OriginNotSelected || s == OriginNotLoaded
}

// IsTerminal - отправка закончила движение по origin-линии.
func (s OriginStatusType) IsTerminal() bool {
	return s == OriginLoaded || s.IsSideBranch()
}

type CoordinationStatusType string

const (
	CoordinationLabeled      CoordinationStatusType = "labeled"
	CoordinationSupplierData CoordinationStatusType = "supplier_data"
	CoordinationBilling      CoordinationStatusType = "billing"
	CoordinationInspected    CoordinationStatusType = "inspected"
	CoordinationReserved     CoordinationStatusType = "reserved"
	CoordinationNotReserved  CoordinationStatusType = "not_reserved"
	CoordinationShipped      CoordinationStatusType = "shipped"
	CoordinationNotShipped   CoordinationStatusType = "not_shipped"
)

const DefaultCoordinationStatus = CoordinationLabeled

var coordinationOrdinals = map[CoordinationStatusType]int{
	CoordinationLabeled:      0,
	CoordinationSupplierData: 1,
	CoordinationBilling:      2,
	CoordinationInspected:    3,
	CoordinationReserved:     4,
	CoordinationNotReserved:  5,
	CoordinationShipped:      6,
	CoordinationNotShipped:   7,
}

func CoordinationStatuses() []CoordinationStatusType {
	return []CoordinationStatusType{
		CoordinationLabeled,
		CoordinationSupplierData,
		CoordinationBilling,
		CoordinationInspected,
		CoordinationReserved,
		CoordinationNotReserved,
		CoordinationShipped,
		CoordinationNotShipped,
	}
}

func (s CoordinationStatusType) String() string {
	return string(s)
}

func (s CoordinationStatusType) Ordinal() (int, bool) {
	ord, ok := coordinationOrdinals[s]
	return ord, ok
}

func (s CoordinationStatusType) IsValid() bool {
	_, ok := coordinationOrdinals[s]
	return ok
}

func (s CoordinationStatusType) IsSideBranch() bool {
	return s == CoordinationNotReserved || s == CoordinationNotShipped
}

func (s CoordinationStatusType) IsTerminal() bool {
	return s == CoordinationShipped || s.IsSideBranch()
}
