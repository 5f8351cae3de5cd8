package sparse

// Push appends values to dst starting at its current length and returns the
// new length. An absent or unusable length counts as 0. [Hole] arguments are
// skipped and do not consume an index.
//
//	s := sparse.New(1, 2)
//	sparse.Push(s, 3, 4) // → 4, s is [1, 2, 3, 4]
func Push(dst Mutable, values ...any) int {
	n := lengthOf(dst)
	for _, v := range values {
		if isHole(v) {
			continue
		}
		dst.Set(n, v)
		n++
	}
	dst.SetLength(n)
	return n
}

// PushAll is [Push] with its arguments taken from an array-like, so that only
// the occupied slots of args are appended.
func PushAll(dst Mutable, args ArrayLike) int {
	return Push(dst, Values(args)...)
}

// Fill writes value into every index of dst from 0 to its length - 1,
// whether or not the index was occupied, and returns dst. A zero or absent
// length leaves dst untouched. Filling with [Hole] stores nil, so the result
// never has holes.
func Fill(dst Mutable, value any) Mutable {
	if isHole(value) {
		value = nil
	}
	n := lengthOf(dst)
	for k := 0; k < n; k++ {
		dst.Set(k, value)
	}
	return dst
}

// Push appends values in place and returns the new length. See [Push].
func (s *Sequence) Push(values ...any) int { return Push(s, values...) }

// Fill overwrites every index in [0, Len()) with value and returns s.
// See [Fill].
func (s *Sequence) Fill(value any) *Sequence {
	Fill(s, value)
	return s
}
