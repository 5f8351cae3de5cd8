package sparse

// Map returns a new Sequence with the same length as src where every
// occupied index k holds fn(src[k]). Holes stay holes; fn is never called
// for them.
//
// A src that is not a *Sequence is first copied with [Slice] from 0, so an
// array-like's holes are squeezed out before mapping.
func Map(src ArrayLike, fn func(any) any) *Sequence {
	seq, ok := src.(*Sequence)
	if !ok {
		seq = Slice(src, 0)
	}
	out := WithLength(seq.Len())
	for k, v := range Entries(seq) {
		out.Set(k, fn(v))
	}
	return out
}

// Filter returns a new, dense Sequence holding the occupied values of src for
// which pred returns true, in key order.
func Filter(src ArrayLike, pred func(any) bool) *Sequence {
	out := Empty()
	for _, v := range Entries(src) {
		if pred(v) {
			Push(out, v)
		}
	}
	return out
}

// Reject is the complement of [Filter].
func Reject(src ArrayLike, pred func(any) bool) *Sequence {
	return Filter(src, func(v any) bool { return !pred(v) })
}

// Map returns a new sequence of fn applied to every occupied element.
// See [Map].
func (s *Sequence) Map(fn func(any) any) *Sequence { return Map(s, fn) }

// Filter returns a new dense sequence of the elements matching pred.
// See [Filter].
func (s *Sequence) Filter(pred func(any) bool) *Sequence { return Filter(s, pred) }

// Reject returns a new dense sequence of the elements not matching pred.
func (s *Sequence) Reject(pred func(any) bool) *Sequence { return Reject(s, pred) }
