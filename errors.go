package datamatrix

import (
	"errors"

	"github.com/ericlevine/datamatrix/encoder"
)

var (
	// ErrTextTooBig is returned when the message does not fit.
	ErrTextTooBig = encoder.ErrTextTooBig

	// ErrInvalidSquare is returned for a size that is not a standard symbol.
	ErrInvalidSquare = encoder.ErrInvalidSquare

	// ErrExtension is returned for invalid extension directives.
	ErrExtension = encoder.ErrExtension

	// ErrInvalidMode is returned for an unknown compaction mode.
	ErrInvalidMode = encoder.ErrInvalidMode
)

// Status is the outcome of a generation request.
type Status int

const (
	StatusOK Status = iota
	StatusTextTooBig
	StatusInvalidSquare
	StatusExtension
	StatusUnknown
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "NO_ERROR"
	case StatusTextTooBig:
		return "ERROR_TEXT_TOO_BIG"
	case StatusInvalidSquare:
		return "ERROR_INVALID_SQUARE"
	case StatusExtension:
		return "ERROR_EXTENSION"
	default:
		return "ERROR_UNKNOWN"
	}
}

// StatusOf classifies an error returned by Generate.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrTextTooBig):
		return StatusTextTooBig
	case errors.Is(err, ErrInvalidSquare):
		return StatusInvalidSquare
	case errors.Is(err, ErrExtension):
		return StatusExtension
	default:
		return StatusUnknown
	}
}
