package sparse

import "iter"

// Keys returns the occupied indices of a in ascending order.
//
// Holes are skipped and the length attribute itself is never yielded. The
// returned sequence is lazy and restartable: each range over it starts again
// from the smallest occupied index. An array-like with no usable length
// yields nothing.
//
// Array-likes that list their own keys (such as [*Sequence] and [Record])
// are asked directly; any other implementation is probed with Has over
// [0, length).
func Keys(a ArrayLike) iter.Seq[int] {
	if kl, ok := a.(keyLister); ok {
		return kl.Keys()
	}
	return func(yield func(int) bool) {
		n := lengthOf(a)
		for k := 0; k < n; k++ {
			if a.Has(k) && !yield(k) {
				return
			}
		}
	}
}

// Entries returns the occupied (index, value) pairs of a in the order given
// by [Keys].
func Entries(a ArrayLike) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for k := range Keys(a) {
			v, ok := a.Get(k)
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Values returns the occupied values of a in index order as a plain slice.
func Values(a ArrayLike) []any {
	var out []any
	for _, v := range Entries(a) {
		out = append(out, v)
	}
	return out
}
