package container

import "time"

type ContainerDB struct {
	ID                int64
	SequenceCode      string
	ChinaState        string
	DocState          string
	ManifestRef       string
	DocsRef           string
	ConfirmedBoxCount int64
	ConfirmedVolume   float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ContainerModifyDB struct {
	ID           *int64
	SequenceCode *string
	ChinaState   *string
	DocState     *string
	ManifestRef  *string
	DocsRef      *string
}
