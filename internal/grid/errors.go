package grid

import "errors"

var (
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrInvalidSpan    = errors.New("span must be at least 1")
	ErrNegativeValue  = errors.New("value must not be negative")
	ErrUnknownChild   = errors.New("child is not managed by this container")
	ErrInvalidSticky  = errors.New("invalid sticky value")
)
