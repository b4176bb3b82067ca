package loader

import "errors"

// Domain errors for loading simulation exports.
var (
	// ErrInvalidExtension indicates a file name with an extension other
	// than .csv.
	ErrInvalidExtension = errors.New("loader: invalid file extension")

	// ErrMalformedData indicates a table whose rows do not carry exactly
	// the six expected columns [Rx, Ry, Rz, Mx, My, Mz].
	ErrMalformedData = errors.New("loader: data must have 6 columns")
)
