package sparse

import (
	"encoding/json"
	"fmt"
)

// Kind identifies what a [Box] wraps.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBoolean
	KindFunction
)

// String returns the JavaScript constructor name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindFunction:
		return "Function"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Box is a wrapper object around a primitive or a callable, the equivalent of
// new Number(1) or new String("a") as opposed to the bare primitive.
//
// Boxes only matter to [Concat], whose receiver rule unwraps primitive boxes
// and re-wraps everything else. A Box is always truthy.
type Box struct {
	kind  Kind
	value any
}

// WrapNumber boxes a number.
func WrapNumber(n float64) *Box { return &Box{kind: KindNumber, value: n} }

// WrapString boxes a string.
func WrapString(s string) *Box { return &Box{kind: KindString, value: s} }

// WrapBool boxes a boolean.
func WrapBool(b bool) *Box { return &Box{kind: KindBoolean, value: b} }

// WrapFunc applies the callable-wrapper operation to v. Wrapping a value that
// is already a Box nests it rather than replacing it.
func WrapFunc(v any) *Box { return &Box{kind: KindFunction, value: v} }

// Kind returns what the box wraps.
func (b *Box) Kind() Kind { return b.kind }

// Unwrap returns the wrapped value.
func (b *Box) Unwrap() any { return b.value }

// String renders the box the way a console prints wrapper objects.
func (b *Box) String() string {
	switch b.kind {
	case KindString:
		return fmt.Sprintf("[String: %q]", b.value)
	case KindFunction:
		return fmt.Sprintf("[Function: %v]", b.value)
	}
	return fmt.Sprintf("[%s: %v]", b.kind, b.value)
}

// MarshalJSON encodes primitive boxes as their primitive and callable boxes
// as an empty object, as JSON.stringify does.
func (b *Box) MarshalJSON() ([]byte, error) {
	if b.kind == KindFunction {
		return []byte("{}"), nil
	}
	return json.Marshal(b.value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

// Category is the merge classification [Concat] applies to a value.
type Category int

const (
	CategoryAbsent Category = iota
	CategoryNumber
	CategoryString
	CategoryBoolean
	CategoryCallable
	CategorySequence
	CategoryOther
)

var categoryNames = [...]string{
	CategoryAbsent:   "absent",
	CategoryNumber:   "number",
	CategoryString:   "string",
	CategoryBoolean:  "boolean",
	CategoryCallable: "callable",
	CategorySequence: "sequence",
	CategoryOther:    "other",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Classify returns the merge category of v.
//
// nil (and a nil *Box) is absent. Boxes classify by their kind. Any
// [ArrayLike] with a usable length is a sequence. Everything else, bare
// primitives included, is other.
func Classify(v any) Category {
	switch x := v.(type) {
	case nil:
		return CategoryAbsent
	case *Box:
		if x == nil {
			return CategoryAbsent
		}
		switch x.kind {
		case KindNumber:
			return CategoryNumber
		case KindString:
			return CategoryString
		case KindBoolean:
			return CategoryBoolean
		}
		return CategoryCallable
	case ArrayLike:
		if _, ok := x.Length(); ok {
			return CategorySequence
		}
	}
	return CategoryOther
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge rules
// ─────────────────────────────────────────────────────────────────────────────

// mergeReceiver appends the concat receiver to dst.
//
// Primitive boxes are unwrapped, callable boxes and unclassified values are
// wrapped with WrapFunc, sequences are spliced. An array-like without a usable
// length contributes nothing.
func mergeReceiver(dst *Sequence, v any) {
	if a, ok := v.(ArrayLike); ok {
		if _, usable := a.Length(); !usable {
			return
		}
	}
	switch Classify(v) {
	case CategoryAbsent:
		appendValue(dst, nil)
	case CategoryNumber, CategoryString, CategoryBoolean:
		appendValue(dst, v.(*Box).Unwrap())
	case CategorySequence:
		splice(dst, v.(ArrayLike))
	default:
		appendValue(dst, WrapFunc(v))
	}
}

// mergeArgument appends one concat argument to dst. Only a *Sequence is
// spliced; any other array-like, like every other value, is appended whole.
func mergeArgument(dst *Sequence, v any) {
	if seq, ok := v.(*Sequence); ok && seq != nil {
		splice(dst, seq)
		return
	}
	appendValue(dst, v)
}

// splice appends every occupied element of src to dst in key order.
func splice(dst *Sequence, src ArrayLike) {
	for _, v := range Entries(src) {
		appendValue(dst, v)
	}
}

// appendValue stores v at dst's length. A Hole only advances the length.
func appendValue(dst *Sequence, v any) {
	if isHole(v) {
		dst.length++
		return
	}
	dst.Set(dst.length, v)
}
