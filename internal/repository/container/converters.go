package container

import (
	"github.com/AlekSi/pointer"
	"freight/internal/entities"
)

func ToDomain(containerDB *ContainerDB) *entities.Container {
	return &entities.Container{
		ID:                containerDB.ID,
		SequenceCode:      containerDB.SequenceCode,
		ChinaState:        entities.ChinaStateType(containerDB.ChinaState),
		DocState:          entities.DocStateType(containerDB.DocState),
		ManifestRef:       containerDB.ManifestRef,
		DocsRef:           containerDB.DocsRef,
		ConfirmedBoxCount: containerDB.ConfirmedBoxCount,
		ConfirmedVolume:   containerDB.ConfirmedVolume,
		CreatedAt:         containerDB.CreatedAt,
		UpdatedAt:         containerDB.UpdatedAt,
	}
}

func FromDomainModify(containerModify *entities.ContainerModify) *ContainerModifyDB {
	containerModifyDB := &ContainerModifyDB{
		ID:           containerModify.ID,
		SequenceCode: containerModify.SequenceCode,
		ManifestRef:  containerModify.ManifestRef,
		DocsRef:      containerModify.DocsRef,
	}
	if containerModify.ChinaState != nil {
		containerModifyDB.ChinaState = pointer.ToString(containerModify.ChinaState.String())
	}
	if containerModify.DocState != nil {
		containerModifyDB.DocState = pointer.ToString(containerModify.DocState.String())
	}
	return containerModifyDB
}
