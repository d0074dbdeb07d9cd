package completion

import (
	"context"
	"fmt"

	"freight/internal/entities"
	"freight/pkg/logger"
)

// Evaluator выводит макро-статус контейнера по двум независимым осям:
// китайской (приемка) и документальной. Оси никогда не блокируют друг
// друга и оцениваются отдельными таблицами решений.
type Evaluator struct {
	log        serviceLogger
	repository Repository
	artifacts  ArtifactStore
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	artifacts ArtifactStore,
	txManager TxManager,
) *Evaluator {
	return &Evaluator{
		log:        log,
		repository: repository,
		artifacts:  artifacts,
		txManager:  txManager,
	}
}

// StateView - контейнер с публичными ссылками на артефакты для read-пути.
type StateView struct {
	Container   entities.Container
	ManifestURL string
	DocsURL     string
}

// Evaluate переоценивает обе оси. Таблица решений по китайской оси
// (первое совпадение выигрывает):
//  1. манифест загружен -> completed;
//  2. какая-то отправка еще в supplier_data -> статус не трогаем,
//     ввод данных продолжается;
//  3. иначе -> receiving.
//
// Документальная ось симметрична: артефакт docs_ref и статус billing.
func (e *Evaluator) Evaluate(ctx context.Context, containerID int64) (*entities.ContainerState, error) {
	container, err := e.repository.GetContainerByID(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("get container: %w", err)
	}

	chinaState, err := e.evaluateChina(ctx, container)
	if err != nil {
		return nil, err
	}

	docState, err := e.evaluateDoc(ctx, container)
	if err != nil {
		return nil, err
	}

	if chinaState != container.ChinaState || docState != container.DocState {
		_, err = e.repository.UpdateContainer(ctx, entities.ContainerModify{
			ID:         &container.ID,
			ChinaState: &chinaState,
			DocState:   &docState,
		})
		if err != nil {
			return nil, fmt.Errorf("persist container state: %w", err)
		}
	}

	return &entities.ContainerState{
		ContainerID: containerID,
		ChinaState:  chinaState,
		DocState:    docState,
	}, nil
}

func (e *Evaluator) evaluateChina(ctx context.Context, container *entities.Container) (entities.ChinaStateType, error) {
	if container.ManifestRef != "" {
		present, err := e.artifactPresent(ctx, container.ID, container.ManifestRef)
		if err != nil {
			return "", err
		}
		if present {
			return entities.ChinaCompleted, nil
		}
	}

	inProgress, err := e.repository.HasShipmentInCoordinationStatus(ctx, container.ID, entities.CoordinationSupplierData)
	if err != nil {
		return "", fmt.Errorf("check supplier_data shipments: %w", err)
	}
	if inProgress {
		return container.ChinaState, nil
	}
	return entities.ChinaReceiving, nil
}

func (e *Evaluator) evaluateDoc(ctx context.Context, container *entities.Container) (entities.DocStateType, error) {
	if container.DocsRef != "" {
		present, err := e.artifactPresent(ctx, container.ID, container.DocsRef)
		if err != nil {
			return "", err
		}
		if present {
			return entities.DocCompleted, nil
		}
	}

	inProgress, err := e.repository.HasShipmentInCoordinationStatus(ctx, container.ID, entities.CoordinationBilling)
	if err != nil {
		return "", fmt.Errorf("check billing shipments: %w", err)
	}
	if inProgress {
		return container.DocState, nil
	}
	return entities.DocProcessing, nil
}

// artifactPresent сверяет сохраненную ссылку с внешним хранилищем.
// Потерянный бинарник не считается присутствующим, но и не валит оценку.
func (e *Evaluator) artifactPresent(ctx context.Context, containerID int64, ref string) (bool, error) {
	exists, err := e.artifacts.Exists(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("check artifact %q: %w", ref, err)
	}
	if !exists {
		e.log.Warn("artifact ref points to a missing object",
			logger.NewField("container", containerID),
			logger.NewField("ref", ref),
		)
	}
	return exists, nil
}

// AttachManifest фиксирует ссылку на загруженный манифест. Контейнер
// нельзя закрывать по китайской оси, пока под ним есть отправки,
// не дошедшие до терминального origin-статуса.
func (e *Evaluator) AttachManifest(ctx context.Context, containerID int64, ref string) (*entities.ContainerState, error) {
	if ref == "" {
		return nil, ErrMissingArtifactRef
	}

	state := &entities.ContainerState{}
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		open, err := e.repository.CountOriginNonTerminal(ctx, containerID)
		if err != nil {
			return fmt.Errorf("count open shipments: %w", err)
		}
		if open > 0 {
			return fmt.Errorf("%w: %d on origin line", ErrShipmentsInProgress, open)
		}

		_, err = e.repository.UpdateContainer(ctx, entities.ContainerModify{
			ID:          &containerID,
			ManifestRef: &ref,
		})
		if err != nil {
			return fmt.Errorf("set manifest ref: %w", err)
		}

		state, err = e.Evaluate(ctx, containerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (e *Evaluator) RemoveManifest(ctx context.Context, containerID int64) (*entities.ContainerState, error) {
	return e.removeArtifact(ctx, containerID, func(container *entities.Container) (string, entities.ContainerModify) {
		empty := ""
		return container.ManifestRef, entities.ContainerModify{
			ID:          &container.ID,
			ManifestRef: &empty,
		}
	})
}

// AttachDocs закрывает документальную ось; инвариант симметричен манифесту,
// но по координационной линии.
func (e *Evaluator) AttachDocs(ctx context.Context, containerID int64, ref string) (*entities.ContainerState, error) {
	if ref == "" {
		return nil, ErrMissingArtifactRef
	}

	state := &entities.ContainerState{}
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		open, err := e.repository.CountCoordinationNonTerminal(ctx, containerID)
		if err != nil {
			return fmt.Errorf("count open shipments: %w", err)
		}
		if open > 0 {
			return fmt.Errorf("%w: %d on coordination line", ErrShipmentsInProgress, open)
		}

		_, err = e.repository.UpdateContainer(ctx, entities.ContainerModify{
			ID:      &containerID,
			DocsRef: &ref,
		})
		if err != nil {
			return fmt.Errorf("set docs ref: %w", err)
		}

		state, err = e.Evaluate(ctx, containerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (e *Evaluator) RemoveDocs(ctx context.Context, containerID int64) (*entities.ContainerState, error) {
	return e.removeArtifact(ctx, containerID, func(container *entities.Container) (string, entities.ContainerModify) {
		empty := ""
		return container.DocsRef, entities.ContainerModify{
			ID:      &container.ID,
			DocsRef: &empty,
		}
	})
}

func (e *Evaluator) removeArtifact(
	ctx context.Context,
	containerID int64,
	clear func(*entities.Container) (string, entities.ContainerModify),
) (*entities.ContainerState, error) {
	var ref string
	state := &entities.ContainerState{}

	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		container, err := e.repository.GetContainerByID(ctx, containerID)
		if err != nil {
			return fmt.Errorf("get container: %w", err)
		}

		currentRef, modify := clear(container)
		if currentRef == "" {
			return ErrArtifactNotAttached
		}
		ref = currentRef

		if _, err := e.repository.UpdateContainer(ctx, modify); err != nil {
			return fmt.Errorf("clear artifact ref: %w", err)
		}

		state, err = e.Evaluate(ctx, containerID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Удаление бинарника вне транзакции: хранилище внешнее, его сбой
	// не должен откатывать уже снятую ссылку.
	if err := e.artifacts.Delete(ctx, ref); err != nil {
		e.log.Warn("artifact delete failed",
			logger.NewField("error", err),
			logger.NewField("container", containerID),
			logger.NewField("ref", ref),
		)
	}

	return state, nil
}

// ContainerState - read-путь для API: текущее состояние плюс ссылки.
func (e *Evaluator) ContainerState(ctx context.Context, containerID int64) (*StateView, error) {
	container, err := e.repository.GetContainerByID(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("get container: %w", err)
	}

	view := &StateView{Container: *container}
	if container.ManifestRef != "" {
		view.ManifestURL = e.artifacts.URLFor(container.ManifestRef)
	}
	if container.DocsRef != "" {
		view.DocsURL = e.artifacts.URLFor(container.DocsRef)
	}
	return view, nil
}
