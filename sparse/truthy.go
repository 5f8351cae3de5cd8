package sparse

import "math"

// Truthy reports whether v would be true in a boolean context.
//
// nil, false, numeric zero, NaN and the empty string are falsy. Boxes,
// sequences and every other value are truthy, since they are objects.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case *Box:
		return x != nil
	case hole:
		return false
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}
