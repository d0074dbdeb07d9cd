package completion

import "errors"

var (
	ErrContainerNotFound   = errors.New("container not found")
	ErrMissingArtifactRef  = errors.New("artifact reference is required")
	ErrShipmentsInProgress = errors.New("container has shipments in progress on this axis")
	ErrArtifactNotAttached = errors.New("artifact is not attached")
)
