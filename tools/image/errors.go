package image

import "errors"

var (
	ErrFileRequired     = errors.New("file is required")
	ErrEmptySource      = errors.New("image source is empty")
	ErrBadDataURL       = errors.New("malformed data url")
	ErrUnknownTune      = errors.New("unknown tune")
	ErrUnknownPasteKind = errors.New("unknown paste kind")
)
