package i18n

import "errors"

var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	ErrUnsupportedFormat     = errors.New("unsupported translation file format")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrLoadingCancelled      = errors.New("loading translations cancelled")

	ErrInvalidShorthand = errors.New("invalid translation shorthand")
)
