package sparse

import "errors"

// Sentinel errors returned by sparse operations.
//
// None of the nominal array operations fail on array-like input; these are
// reserved for the opt-in strict variants, named dispatch and decoding.
var (
	// ErrEmptyReduce is returned by [ReduceOrFail] when the source has no
	// occupied elements and no initial value was supplied.
	ErrEmptyReduce = errors.New("sparse: reduce of empty sequence with no initial value")

	// ErrMethodNotFound is returned by [Prototype.Invoke] when no method is
	// defined under the requested name.
	ErrMethodNotFound = errors.New("sparse: method not found")

	// ErrNotCallable is returned by [Prototype.Invoke] when a callback
	// argument is missing or has an unsupported function signature.
	ErrNotCallable = errors.New("sparse: argument is not callable")

	// ErrNotMutable is returned by [Prototype.Invoke] when push or fill is
	// invoked on a receiver that does not implement [Mutable].
	ErrNotMutable = errors.New("sparse: receiver is not mutable")

	// ErrInvalidDocument is returned when decoding a serialised sequence
	// whose length or indices are malformed.
	ErrInvalidDocument = errors.New("sparse: invalid sequence document")
)
