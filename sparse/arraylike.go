package sparse

import "iter"

// ArrayLike is the read capability every operation in this package accepts.
//
// It is satisfied by [*Sequence] and [Record], and by any caller type that
// can report a length and look values up by index. Accept ArrayLike in your
// own functions so that callers can pass either.
//
// Portability note: this is the "array-like object" of JavaScript, an object
// with a length property and integer-keyed properties.
type ArrayLike interface {
	// Length returns the length attribute. The second result is false when
	// the value has no usable length at all.
	Length() (int, bool)

	// Get returns the value stored at index k and whether k is occupied.
	Get(k int) (any, bool)

	// Has reports whether index k is occupied.
	Has(k int) bool
}

// Mutable is an [ArrayLike] that can be written. [Push] and [Fill] accept any
// Mutable.
type Mutable interface {
	ArrayLike

	// Set stores v at index k.
	Set(k int, v any)

	// SetLength replaces the length attribute.
	SetLength(n int)
}

// keyLister is implemented by array-likes that can list their occupied
// indices directly, in ascending order, instead of being probed index by
// index.
type keyLister interface {
	Keys() iter.Seq[int]
}

// lengthOf returns the usable length of a, or 0.
func lengthOf(a ArrayLike) int {
	n, ok := a.Length()
	if !ok || n < 0 {
		return 0
	}
	return n
}
