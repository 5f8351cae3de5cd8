// Package sparse provides a JavaScript-style sparse sequence and the
// standard higher-order array operations over it: push, slice, concat, map,
// filter, reduce and fill.
//
// # Overview
//
// The central type is [Sequence], an ordered, integer-keyed value store
// with an independent length. Indices below the length that were never
// written are holes: they are part of the nominal range but hold no value,
// and no operation ever visits them.
//
//	s := sparse.New(1, sparse.Hole, 3) // [1, <hole>, 3]
//	s.Len()   // → 3
//	s.Count() // → 2
//
// # Array-likes
//
// Every read-only operation accepts an [ArrayLike]: anything exposing a
// length and some indexed values. [Record] is the ready-made duck-typed
// version, a plain map with a "length" entry:
//
//	obj := sparse.Record{"0": "a", "1": "b", "length": 2}
//	sparse.Slice(sparse.Slice(obj, 0), 1) // → ["b"]
//
// # Occupied-key iteration
//
// [Keys] is the single enumerator behind every operation. It yields the
// occupied indices of an array-like in ascending order and skips holes:
//
//	for k := range sparse.Keys(s) {
//	    fmt.Println(k) // 0, 2
//	}
//
// # Operations
//
// Operations are package-level functions over [ArrayLike] (or [Mutable]
// for push and fill), with method forms on *Sequence for chaining:
//
//	sparse.New(1, 2, 3, 4).
//	    Map(func(v any) any { return v.(int) + 1 }).
//	    Filter(func(v any) bool { return v.(int)%2 == 0 }) // → [2, 4]
//
// Slice, concat, map and filter always return a new Sequence; push and fill
// mutate their receiver in place.
//
// # Boxed values
//
// [Concat] distinguishes wrapper values ([Box]) from primitives when merging
// its receiver. See [Concat] for the exact receiver and argument rules.
//
// # Named dispatch
//
// [Prototype] is a method table that dispatches the operations by name and
// accepts new methods at runtime, without mutating any shared state:
//
//	p := sparse.NewPrototype()
//	n, _ := p.Invoke("push", s, 4, 5) // → 5
package sparse
