package seq

import "errors"

// Sentinel errors returned by the checked Try* variants. The unchecked
// primitives never return these; they panic instead.
var (
	// ErrEmptyView indicates a front/back access on a view with no elements.
	ErrEmptyView = errors.New("seq: view is empty")

	// ErrIndexOutOfRange indicates an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrBadRange indicates a Select offset/count pair outside the view.
	ErrBadRange = errors.New("seq: offset/count out of range")

	// ErrNotContiguous indicates no Data strategy resolves for the view.
	ErrNotContiguous = errors.New("seq: view is not contiguous")
)
