package sparse

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the YAML form of a Sequence. Only occupied indices are
// listed, so holes and stored nulls stay distinct:
//
//	length: 4
//	items:
//	  0: a
//	  3: null
type yamlDocument struct {
	Length *int        `yaml:"length"`
	Items  map[int]any `yaml:"items,omitempty"`
}

// MarshalYAML implements [yaml.Marshaler].
func (s *Sequence) MarshalYAML() (any, error) {
	n := s.Len()
	doc := yamlDocument{Length: &n}
	if s.Count() > 0 {
		doc.Items = make(map[int]any, s.Count())
		for k, v := range Entries(s) {
			doc.Items[k] = v
		}
	}
	return doc, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. When the length is omitted it
// is taken to be one past the highest index. Negative indices, a negative
// length, or an index at or past an explicit length are rejected with
// [ErrInvalidDocument].
func (s *Sequence) UnmarshalYAML(node *yaml.Node) error {
	var doc yamlDocument
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	out := Empty()
	if doc.Length != nil {
		if *doc.Length < 0 {
			return fmt.Errorf("%w: negative length %d", ErrInvalidDocument, *doc.Length)
		}
		out.length = *doc.Length
	}
	for k, v := range doc.Items {
		if k < 0 || (doc.Length != nil && k >= *doc.Length) {
			return fmt.Errorf("%w: index %d out of range", ErrInvalidDocument, k)
		}
		out.Set(k, v)
	}
	*s = *out
	return nil
}

// MarshalYAML implements [yaml.Marshaler]: primitive boxes encode as their
// primitive, callable boxes as an empty mapping.
func (b *Box) MarshalYAML() (any, error) {
	if b.kind == KindFunction {
		return map[string]any{}, nil
	}
	return b.value, nil
}
