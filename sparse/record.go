package sparse

import (
	"iter"
	"slices"
	"strconv"
)

// LengthKey is the Record entry holding the length attribute.
const LengthKey = "length"

// Record is a duck-typed array-like: a plain string-keyed object whose
// integer-named entries are indices and whose "length" entry is the length.
//
//	obj := sparse.Record{"0": "a", "1": "b", "length": 2}
//
// The length may be any Go integer or float (floored), a numeric string or a
// number [Box]. A missing, negative, NaN or infinite length is unusable and
// the Record then behaves as an empty array-like. Indices at or past the
// length are invisible through the [ArrayLike] view, and non-index entries
// are ignored entirely.
//
// Record implements [Mutable], so [Push] and [Fill] work on it as they would
// on an array-like object in JavaScript.
type Record map[string]any

// Length implements [ArrayLike].
func (r Record) Length() (int, bool) {
	raw, ok := r[LengthKey]
	if !ok {
		return 0, false
	}
	n, ok := toInteger(raw, true)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// Get returns the value at index k when k is below the length.
func (r Record) Get(k int) (any, bool) {
	if k < 0 || k >= lengthOf(r) {
		return nil, false
	}
	v, ok := r[strconv.Itoa(k)]
	return v, ok
}

// Has reports whether index k is occupied.
func (r Record) Has(k int) bool {
	_, ok := r.Get(k)
	return ok
}

// Keys returns the occupied indices below the length in ascending order.
func (r Record) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := lengthOf(r)
		keys := make([]int, 0, len(r))
		for name := range r {
			if k, ok := indexName(name); ok && k < n {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Set stores v under the decimal name of k and, like an array, extends the
// length to k+1 when needed. Setting [Hole] deletes the entry.
func (r Record) Set(k int, v any) {
	if k < 0 {
		return
	}
	if isHole(v) {
		delete(r, strconv.Itoa(k))
		return
	}
	r[strconv.Itoa(k)] = v
	if k >= lengthOf(r) {
		r[LengthKey] = k + 1
	}
}

// SetLength stores n as the length attribute. Unlike [Sequence.SetLength]
// it leaves entries at or past n in place; they simply become invisible.
func (r Record) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	r[LengthKey] = n
}

// indexName parses a canonical array index name: a non-negative decimal
// without sign or leading zeros.
func indexName(name string) (int, bool) {
	if name == "" || (len(name) > 1 && name[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	k, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	return k, true
}
