package domain

import "errors"

var (
	ErrOutputDirRequired  = errors.New("output directory is required")
	ErrInvalidArtifact    = errors.New("generated artifact failed self-check")
	ErrGenerationNotFound = errors.New("generation not found")
	ErrHistoryDisabled    = errors.New("generation history is disabled")
)
