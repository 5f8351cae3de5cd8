package sparse_test

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-sparse-array/sparse"
)

func TestToJSON(t *testing.T) {
	b, err := sparse.New(1, sparse.Hole, "c").ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `[1,null,"c"]` {
		t.Fatalf("ToJSON = %s", b)
	}
}

func TestStringNested(t *testing.T) {
	s := sparse.New(sparse.New(1), sparse.WrapNumber(2), sparse.WrapFunc("f"))
	if got := s.String(); got != `[[1],2,{}]` {
		t.Fatalf("String = %s", got)
	}
}

func TestStringCircular(t *testing.T) {
	s := sparse.New(1)
	s.Set(1, s)
	if got := s.String(); got != `[1,"[Circular]"]` {
		t.Fatalf("String = %s", got)
	}
	outer := sparse.New(s)
	if got := outer.String(); got != `[[1,"[Circular]"]]` {
		t.Fatalf("String = %s", got)
	}
}

func TestYAMLKeepsHoles(t *testing.T) {
	src := sparse.New("a", sparse.Hole, nil, sparse.Hole)
	b, err := yaml.Marshal(src)
	if err != nil {
		t.Fatal(err)
	}
	got := sparse.Empty()
	if err := yaml.Unmarshal(b, got); err != nil {
		t.Fatalf("Unmarshal(%s): %v", b, err)
	}
	assertSeq(t, got, "a", sparse.Hole, nil, sparse.Hole)
}

func TestYAMLLengthFromIndices(t *testing.T) {
	got := sparse.Empty()
	if err := yaml.Unmarshal([]byte("items:\n  2: x\n"), got); err != nil {
		t.Fatal(err)
	}
	assertSeq(t, got, sparse.Hole, sparse.Hole, "x")
}

func TestFingerprintCircular(t *testing.T) {
	s := sparse.New(1)
	s.Set(1, s)
	r := sparse.Record{"length": 1}
	r["0"] = r
	if sparse.Fingerprint(s) != sparse.Fingerprint(s) || sparse.Fingerprint(r) == "" {
		t.Fatal("self-referencing array-likes should fingerprint deterministically")
	}
	if sparse.Fingerprint(s) == sparse.Fingerprint(sparse.New(1, sparse.New())) {
		t.Fatal("a circular entry should differ from an empty nested sequence")
	}
}

func TestYAMLInvalid(t *testing.T) {
	for _, doc := range []string{
		"length: -1\n",
		"length: 1\nitems:\n  3: x\n",
		"items:\n  -1: x\n",
		"length: [1]\n",
	} {
		err := yaml.Unmarshal([]byte(doc), sparse.Empty())
		if !errors.Is(err, sparse.ErrInvalidDocument) {
			t.Errorf("%q: err = %v; want ErrInvalidDocument", strings.TrimSpace(doc), err)
		}
	}
}

func TestFingerprint(t *testing.T) {
	a := sparse.New(1, sparse.Hole, 3)
	if sparse.Fingerprint(a) != sparse.Fingerprint(sparse.New(1, sparse.Hole, 3)) {
		t.Fatal("equal sequences should share a fingerprint")
	}
	if sparse.Fingerprint(a) == sparse.Fingerprint(sparse.New(1, nil, 3)) {
		t.Fatal("a hole and a stored nil should differ")
	}
	if sparse.Fingerprint(a) == sparse.Fingerprint(sparse.New(1, 3)) {
		t.Fatal("different lengths should differ")
	}
	if sparse.Fingerprint(sparse.New(1)) == sparse.Fingerprint(sparse.New("1")) {
		t.Fatal("different value types should differ")
	}
	if sparse.Fingerprint(sparse.New("a", "b")) == sparse.Fingerprint(sparse.New("a;1=string:b", sparse.Hole)) {
		t.Fatal("a value must not be able to imitate the next index")
	}
	if sparse.Fingerprint(sparse.New(`a"`, "b")) == sparse.Fingerprint(sparse.New("a", `"b`)) {
		t.Fatal("quotes inside values must not shift entry boundaries")
	}
	if len(sparse.Fingerprint(a)) != 64 {
		t.Fatal("fingerprint should be 32 hex-encoded bytes")
	}
}
