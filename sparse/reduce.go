package sparse

// Reduce folds fn over the occupied elements of src in key order.
//
// With an initial value the fold starts from it. Without one the first
// occupied element seeds the accumulator, so a single occupied element is
// returned as-is and fn is never called. A zero or absent length returns the
// initial value unchanged, and no initial value with nothing to fold returns
// nil rather than failing; use [ReduceOrFail] to detect that case.
//
//	sum := sparse.Reduce(sparse.New(1, 2, 3), func(acc, v any) any {
//	    return acc.(int) + v.(int)
//	}) // → 6
func Reduce(src ArrayLike, fn func(acc, v any) any, initial ...any) any {
	acc, _ := fold(src, fn, initial)
	return acc
}

// ReduceOrFail is [Reduce] but returns [ErrEmptyReduce] when there is
// neither an initial value nor an occupied element to start from.
func ReduceOrFail(src ArrayLike, fn func(acc, v any) any, initial ...any) (any, error) {
	acc, ok := fold(src, fn, initial)
	if !ok {
		return nil, ErrEmptyReduce
	}
	return acc, nil
}

// fold reports false when the accumulator was never seeded.
func fold(src ArrayLike, fn func(acc, v any) any, initial []any) (any, bool) {
	var acc any
	seeded := len(initial) > 0
	if seeded {
		acc = initial[0]
	}
	if lengthOf(src) == 0 {
		return acc, seeded
	}
	for _, v := range Entries(src) {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = fn(acc, v)
	}
	return acc, seeded
}

// Reduce folds fn over the occupied elements. See [Reduce].
func (s *Sequence) Reduce(fn func(acc, v any) any, initial ...any) any {
	return Reduce(s, fn, initial...)
}
