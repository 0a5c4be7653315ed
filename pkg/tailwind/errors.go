package tailwind

import "errors"

var (
	ErrNoWatchPaths     = errors.New("no paths to watch")
	ErrWatchPath        = errors.New("failed to watch path")
	ErrCreateWatcher    = errors.New("failed to create file watcher")
	ErrInvalidConfig    = errors.New("invalid tailwind merge configuration")
	ErrUnknownValidator = errors.New("unknown tailwind merge validator")
)
