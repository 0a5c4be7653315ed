package eel

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrTranslationSetup   = errors.New("failed to load translations")
	ErrStorageSetup       = errors.New("failed to set up resource storage")
	ErrTailwindSetup      = errors.New("failed to load tailwind merge configuration")
	ErrInvalidTimezone    = errors.New("invalid timezone")
	ErrWatcherUnavailable = errors.New("no tailwind configuration paths to watch")
)
