package payload

import "errors"

var (
	ErrUnknownKind       = errors.New("payload: unknown object kind")
	ErrUnsupportedFormat = errors.New("payload: unsupported document format")
	ErrEmptyPayload      = errors.New("payload: empty document")
	ErrInvalidJSON       = errors.New("payload: invalid JSON")
	ErrInvalidYAML       = errors.New("payload: invalid YAML")
	ErrReadFile          = errors.New("payload: failed to read file")
)
