package sparse

import (
	"encoding/hex"
	"fmt"
	"hash"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex BLAKE2b-256 digest of a's length, occupied indices
// and values.
//
// Two array-likes share a fingerprint when they have the same length, the same
// occupied indices and equal-rendering values of the same Go type at each of
// them. A hole and an index holding nil hash differently. Nested array-likes
// are fingerprinted recursively; one that contains itself is recorded as a
// circular reference instead of being walked again.
func Fingerprint(a ArrayLike) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with a key longer than 64 bytes.
		panic(err)
	}
	writeFingerprint(h, a, make(map[uintptr]bool))
	return hex.EncodeToString(h.Sum(nil))
}

// writeFingerprint quotes every rendered value so no value can be mistaken
// for the separators around it.
func writeFingerprint(h hash.Hash, a ArrayLike, seen map[uintptr]bool) {
	if id, ok := identityOf(a); ok {
		seen[id] = true
		defer delete(seen, id)
	}
	n, ok := a.Length()
	fmt.Fprintf(h, "length=%d/%t;", n, ok)
	for k, v := range Entries(a) {
		nested, isArr := v.(ArrayLike)
		if !isArr {
			fmt.Fprintf(h, "%d=%T:%q;", k, v, fmt.Sprint(v))
			continue
		}
		if id, ok := identityOf(nested); ok && seen[id] {
			fmt.Fprintf(h, "%d=%T:circular;", k, v)
			continue
		}
		fmt.Fprintf(h, "%d=%T:[", k, v)
		writeFingerprint(h, nested, seen)
		fmt.Fprint(h, "];")
	}
}

// identityOf returns the address behind reference-typed array-likes.
func identityOf(a ArrayLike) (uintptr, bool) {
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}
