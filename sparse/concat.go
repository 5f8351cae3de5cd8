package sparse

// Concat builds a new Sequence from receiver followed by items.
//
// The receiver and the items are merged by two different rules.
//
// Receiver:
//
//	absent (nil)                      appended as nil
//	number, string or boolean *Box    unwrapped, primitive appended
//	callable *Box                     wrapped again with WrapFunc
//	sequence                          every occupied element spliced in
//	anything else                     wrapped with WrapFunc
//
// A receiver that implements [ArrayLike] without a usable length
// contributes nothing.
//
// Items:
//
//	*Sequence                         every occupied element spliced in
//	anything else                     appended unmodified
//
// Array-likes such as [Record] are spliced only as the receiver; as items
// they are appended whole.
//
// Splicing follows [Keys] order and drops holes. The result length is the
// number of values appended.
//
//	sparse.Concat(sparse.New(1), 1, sparse.New(2), 3) // → [1, 1, 2, 3]
func Concat(receiver any, items ...any) *Sequence {
	out := Empty()
	mergeReceiver(out, receiver)
	for _, item := range items {
		mergeArgument(out, item)
	}
	return out
}

// Concat returns a new sequence of s's elements followed by items.
// See [Concat].
func (s *Sequence) Concat(items ...any) *Sequence { return Concat(s, items...) }
