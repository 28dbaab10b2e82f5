package wfc

import "errors"

var (
	// ErrEmptyCatalog reports that the input has no valid window positions for
	// the requested pattern size. Retrying cannot help.
	ErrEmptyCatalog = errors.New("wfc: input has no pattern positions")
	// ErrInvalidPatternSize reports a pattern size below 1.
	ErrInvalidPatternSize = errors.New("wfc: pattern size must be at least 1")
	// ErrInvalidSymmetry reports a symmetry level outside [1, 8].
	ErrInvalidSymmetry = errors.New("wfc: symmetry must be between 1 and 8")
	// ErrTooManyColors reports an input palette that does not fit a uint16 index.
	ErrTooManyColors = errors.New("wfc: too many distinct colors")
	// ErrInvalidInput reports pixel data that does not match its dimensions.
	ErrInvalidInput = errors.New("wfc: invalid input grid")
	// ErrInvalidOutput reports non-positive output dimensions.
	ErrInvalidOutput = errors.New("wfc: output dimensions must be positive")
	// ErrGroundOutOfRange reports a ground pattern index outside the catalog.
	ErrGroundOutOfRange = errors.New("wfc: ground pattern out of range")
	// ErrNotCollapsed is returned when rendering a model whose last attempt
	// did not succeed.
	ErrNotCollapsed = errors.New("wfc: wave is not fully collapsed")
)
