package encoder

import "errors"

var (
	// ErrTextTooBig is returned when the message does not fit the requested
	// symbol or any symbol in the catalog.
	ErrTextTooBig = errors.New("datamatrix/encoder: text too big")

	// ErrInvalidSquare is returned when an explicit height and width do not
	// name a catalog symbol.
	ErrInvalidSquare = errors.New("datamatrix/encoder: invalid symbol size")

	// ErrExtension is returned for malformed, out-of-range or misplaced
	// extension directives.
	ErrExtension = errors.New("datamatrix/encoder: invalid extension")

	// ErrInvalidMode is returned for an unknown compaction mode.
	ErrInvalidMode = errors.New("datamatrix/encoder: invalid mode")
)
