package mesh

import "errors"

var (
	// ErrEmptyScalarField reports a field with no values, whose range is undefined.
	ErrEmptyScalarField = errors.New("empty scalar field")

	// ErrFieldLength reports a field whose value count differs from the point count.
	ErrFieldLength = errors.New("scalar field length does not match point count")

	// ErrInvalidTopology reports a cell block inconsistent with the point set.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrUnknownField reports a requested scalar field that the file does not contain.
	ErrUnknownField = errors.New("unknown scalar field")

	// ErrNoActiveField reports an operation that needs scalars on a colorless mesh.
	ErrNoActiveField = errors.New("mesh has no active scalar field")
)
