package sparse

// Slice copies the occupied elements of src at or after start into a new
// Sequence, re-indexed from 0 in ascending key order.
//
// The result is dense and its length is the number of elements copied, not
// length - start: slicing [1, <hole>, 3] from 0 gives [1, 3]. An array-like
// with no usable length, or a start at or past the length, gives an empty
// sequence. A negative start is treated as 0.
func Slice(src ArrayLike, start int) *Sequence {
	out := Empty()
	n, ok := src.Length()
	if !ok || start >= n {
		return out
	}
	for k, v := range Entries(src) {
		if k >= start {
			appendValue(out, v)
		}
	}
	return out
}

// Slice returns a new sequence of the occupied elements at or after start.
// See [Slice].
func (s *Sequence) Slice(start int) *Sequence { return Slice(s, start) }
