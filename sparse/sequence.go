package sparse

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// Sequence is an ordered, integer-keyed value store with an independent
// length, modelled on the JavaScript Array.
//
// Indices in [0, Len()) that hold no value are holes. Holes are never visited
// by iteration and never appear in the output of [Slice], [Concat] or
// [Filter]; [Map] keeps them in place and [Fill] is the only operation that
// removes them.
//
// Storage is a red-black tree keyed by index, so occupied indices are always
// enumerated in ascending order and a sequence with a huge length but few
// values stays small.
//
// # Creating a sequence
//
//	s := sparse.New(1, 2, 3)                          // dense
//	s := sparse.New(1, sparse.Hole, 3)                // [1, <hole>, 3]
//	s := sparse.WithLength(4)                         // four holes
//	s := sparse.FromEntries(map[int]any{2: "x"}, 0)   // [<hole>, <hole>, "x"]
//
// The zero value is an empty sequence ready to use.
//
// Sequence is not safe for concurrent mutation.
type Sequence struct {
	length int
	items  *treemap.Map
}

// hole is the type of [Hole].
type hole struct{}

func (hole) String() string { return "<hole>" }

// Hole marks an unpopulated slot in [New], [Construct] and [Push] arguments.
// Storing Hole with [Sequence.Set] deletes the index instead.
var Hole = hole{}

func isHole(v any) bool {
	_, ok := v.(hole)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence holding values at indices 0, 1, 2, ... Slots given as
// [Hole] are left unpopulated but still count towards the length.
func New(values ...any) *Sequence {
	s := &Sequence{}
	for i, v := range values {
		if !isHole(v) {
			s.store().Put(i, v)
		}
	}
	s.length = len(values)
	return s
}

// Empty creates an empty Sequence.
func Empty() *Sequence { return &Sequence{} }

// WithLength creates a Sequence of n holes. A negative n is treated as 0.
func WithLength(n int) *Sequence {
	if n < 0 {
		n = 0
	}
	return &Sequence{length: n}
}

// FromEntries creates a Sequence from literal index/value pairs. The length is
// the larger of length and one past the highest index. Negative indices and
// [Hole] values are ignored.
func FromEntries(entries map[int]any, length int) *Sequence {
	s := WithLength(length)
	for k, v := range entries {
		s.Set(k, v)
	}
	return s
}

// Construct mirrors the Array constructor: a single non-negative integer
// argument creates a sequence of that many holes, any other argument list
// becomes the contents as with [New].
//
//	sparse.Construct(3)       // [<hole>, <hole>, <hole>]
//	sparse.Construct(3, 4)    // [3, 4]
//	sparse.Construct("3")     // ["3"]
//	sparse.Construct(2.5)     // [2.5]
func Construct(args ...any) *Sequence {
	if len(args) == 1 {
		if n, ok := arrayLength(args[0]); ok {
			return WithLength(n)
		}
	}
	return New(args...)
}

// arrayLength reports whether v is an unboxed, non-negative whole number.
func arrayLength(v any) (int, bool) {
	if _, boxed := v.(*Box); boxed {
		return 0, false
	}
	n, ok := toInteger(v, false)
	if !ok || n < 0 {
		return 0, false
	}
	f, _ := toFloat(v)
	return n, f == float64(n)
}

// store returns the backing tree, creating it on first use.
func (s *Sequence) store() *treemap.Map {
	if s.items == nil {
		s.items = treemap.NewWithIntComparator()
	}
	return s.items
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the length attribute.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Length implements [ArrayLike]. A Sequence always has a usable length.
func (s *Sequence) Length() (int, bool) { return s.Len(), true }

// Count returns the number of occupied indices.
func (s *Sequence) Count() int {
	if s == nil || s.items == nil {
		return 0
	}
	return s.items.Size()
}

// IsDense reports whether every index in [0, Len()) is occupied.
func (s *Sequence) IsDense() bool { return s.Count() == s.Len() }

// Get returns the value at index k together with a presence flag.
// Returns nil and false for holes and indices outside the sequence.
func (s *Sequence) Get(k int) (any, bool) {
	if s == nil || s.items == nil {
		return nil, false
	}
	return s.items.Get(k)
}

// Has reports whether index k is occupied.
func (s *Sequence) Has(k int) bool {
	_, ok := s.Get(k)
	return ok
}

// Keys returns the occupied indices in ascending order. See [Keys].
func (s *Sequence) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s == nil || s.items == nil {
			return
		}
		it := s.items.Iterator()
		for it.Next() {
			if !yield(it.Key().(int)) {
				return
			}
		}
	}
}

// Values returns the occupied values in index order.
func (s *Sequence) Values() []any { return Values(s) }

// Dense returns a slice of Len() values with nil in place of every hole.
func (s *Sequence) Dense() []any {
	out := make([]any, s.Len())
	for k, v := range Entries(s) {
		out[k] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores v at index k, extending the length to k+1 when k is at or past
// the end. Setting [Hole] deletes the index. Negative indices are not array
// indices and are ignored.
func (s *Sequence) Set(k int, v any) {
	if k < 0 {
		return
	}
	if isHole(v) {
		s.Delete(k)
		return
	}
	s.store().Put(k, v)
	if k >= s.length {
		s.length = k + 1
	}
}

// Delete turns index k into a hole. The length is unchanged.
func (s *Sequence) Delete(k int) {
	if s != nil && s.items != nil {
		s.items.Remove(k)
	}
}

// SetLength replaces the length. Shrinking drops every occupied index at or
// past the new length; growing adds holes. A negative n is treated as 0.
func (s *Sequence) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	if s.items != nil {
		for {
			k, _ := s.items.Max()
			if k == nil || k.(int) < n {
				break
			}
			s.items.Remove(k)
		}
	}
	s.length = n
}
