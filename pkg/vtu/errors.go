package vtu

import "errors"

var (
	// ErrMalformedDocument reports input that is not well-formed XML or holds
	// numeric text that does not parse.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupportedFormat reports a DataArray stored as binary or appended data.
	ErrUnsupportedFormat = errors.New("unsupported data array format")

	// ErrMissingGeometry reports a document without a usable points array.
	ErrMissingGeometry = errors.New("missing geometry")

	// ErrMissingTopology reports a cell section lacking connectivity, offsets or types.
	ErrMissingTopology = errors.New("missing topology")

	// ErrNoScalarData reports that a default scalar field was requested but none exist.
	ErrNoScalarData = errors.New("no scalar data")
)
