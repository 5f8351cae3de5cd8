package sparse

import (
	"encoding/json"
	"fmt"
)

// circularMarker replaces a sequence nested inside itself, as a console
// prints it.
const circularMarker = "[Circular]"

// MarshalJSON encodes the sequence as a JSON array of Len() elements with
// null in place of every hole, as JSON.stringify does. A sequence nested
// inside itself is encoded as the string "[Circular]".
func (s *Sequence) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.plain(make(map[*Sequence]bool)))
}

// ToJSON serialises the sequence to a JSON array. See [Sequence.MarshalJSON].
func (s *Sequence) ToJSON() ([]byte, error) { return s.MarshalJSON() }

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.plain(make(map[*Sequence]bool)))
	}
	return string(b)
}

// plain is Dense with nested sequences expanded into slices, so that
// encoding never re-enters a sequence already being encoded.
func (s *Sequence) plain(seen map[*Sequence]bool) []any {
	seen[s] = true
	defer delete(seen, s)
	out := make([]any, s.Len())
	for k, v := range Entries(s) {
		nested, ok := v.(*Sequence)
		switch {
		case !ok:
			out[k] = v
		case nested == nil:
			out[k] = nil
		case seen[nested]:
			out[k] = circularMarker
		default:
			out[k] = nested.plain(seen)
		}
	}
	return out
}
