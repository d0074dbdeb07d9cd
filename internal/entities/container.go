package entities

import "time"

// Container - сборный контейнер, объединяющий несколько заявок клиентов.
// Две независимые оси макро-статуса: китайская (приемка груза) и
// документальная (оформление на стороне назначения). Оси друг друга не блокируют.
type Container struct {
	ID                int64
	SequenceCode      string
	ChinaState        ChinaStateType
	DocState          DocStateType
	ManifestRef       string // пустая строка = манифест не загружен
	DocsRef           string
	ConfirmedBoxCount int64
	ConfirmedVolume   float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ContainerModify struct {
	ID           *int64
	SequenceCode *string
	ChinaState   *ChinaStateType
	DocState     *DocStateType
	ManifestRef  *string
	DocsRef      *string
}

// ContainerState - результат переоценки макро-статуса.
type ContainerState struct {
	ContainerID int64
	ChinaState  ChinaStateType
	DocState    DocStateType
}

type ChinaStateType string

const (
	ChinaPending   ChinaStateType = "pending"
	ChinaReceiving ChinaStateType = "receiving"
	ChinaCompleted ChinaStateType = "completed"
)

const DefaultChinaState = ChinaPending

func (s ChinaStateType) String() string {
	return string(s)
}

func (s ChinaStateType) IsValid() bool {
	switch s {
	case ChinaPending, ChinaReceiving, ChinaCompleted:
		return true
	}
	return false
}

type DocStateType string

const (
	DocPending    DocStateType = "pending"
	DocProcessing DocStateType = "processing"
	DocCompleted  DocStateType = "completed"
)

const DefaultDocState = DocPending

func (s DocStateType) String() string {
	return string(s)
}

func (s DocStateType) IsValid() bool {
	switch s {
	case DocPending, DocProcessing, DocCompleted:
		return true
	}
	return false
}
