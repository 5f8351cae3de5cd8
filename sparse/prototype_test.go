package sparse_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/hasbyte1/go-sparse-array/sparse"
)

func invoke(t *testing.T, p *sparse.Prototype, name string, this any, args ...any) any {
	t.Helper()
	v, err := p.Invoke(name, this, args...)
	if err != nil {
		t.Fatalf("Invoke(%q): %v", name, err)
	}
	return v
}

func TestPrototypeBuiltins(t *testing.T) {
	want := []string{"concat", "fill", "filter", "map", "push", "reduce", "slice"}
	if got := sparse.NewPrototype().Names(); !slices.Equal(got, want) {
		t.Fatalf("Names = %v; want %v", got, want)
	}
}

func TestPrototypePushFill(t *testing.T) {
	p := sparse.NewPrototype()
	s := sparse.New(1)
	if n := invoke(t, p, "push", s, 2, 3); n != 3 {
		t.Fatalf("push = %v; want 3", n)
	}
	invoke(t, p, "fill", s, "x")
	assertSeq(t, s, "x", "x", "x")

	_, err := p.Invoke("push", 42, 1)
	if !errors.Is(err, sparse.ErrNotMutable) {
		t.Fatalf("err = %v; want ErrNotMutable", err)
	}
}

func TestPrototypeSliceCall(t *testing.T) {
	p := sparse.NewPrototype()
	obj := sparse.Record{"0": "a", "1": "b", "length": 2}
	first := invoke(t, p, "slice", obj, 0).(*sparse.Sequence)
	assertSeq(t, invoke(t, p, "slice", first, "1").(*sparse.Sequence), "b")
	assertSeq(t, invoke(t, p, "slice", obj).(*sparse.Sequence), "a", "b")
	assertSeq(t, invoke(t, p, "slice", 42, 0).(*sparse.Sequence))
}

func TestPrototypeChain(t *testing.T) {
	p := sparse.NewPrototype()
	mapped := invoke(t, p, "map", sparse.New(1, 2, 3, 4), inc)
	evens := invoke(t, p, "filter", mapped, func(v any) any { return v.(int) % 2 })
	assertSeq(t, evens.(*sparse.Sequence), 3, 5)
	total := invoke(t, p, "reduce", evens, sum, 0)
	if total != 8 {
		t.Fatalf("reduce = %v; want 8", total)
	}
	assertSeq(t, invoke(t, p, "concat", sparse.New(1), 1, sparse.New(2), 3).(*sparse.Sequence), 1, 1, 2, 3)
}

func TestPrototypeNotCallable(t *testing.T) {
	p := sparse.NewPrototype()
	for _, name := range []string{"map", "filter", "reduce"} {
		_, err := p.Invoke(name, sparse.New(1), "not a function")
		if !errors.Is(err, sparse.ErrNotCallable) {
			t.Errorf("%s: err = %v; want ErrNotCallable", name, err)
		}
	}
}

func TestPrototypeMethodNotFound(t *testing.T) {
	_, err := sparse.NewPrototype().Invoke("flatMap", sparse.New())
	if !errors.Is(err, sparse.ErrMethodNotFound) {
		t.Fatalf("err = %v; want ErrMethodNotFound", err)
	}
}

func TestPrototypeDefineReplacesBuiltin(t *testing.T) {
	p := sparse.NewPrototype()
	p.Define("map", func(this any, args ...any) (any, error) {
		return "patched", nil
	})
	if v := invoke(t, p, "map", sparse.New(1), inc); v != "patched" {
		t.Fatalf("map = %v; want patched", v)
	}
	if v := invoke(t, sparse.NewPrototype(), "map", sparse.New(1), inc); v == "patched" {
		t.Fatal("patching one prototype leaked into another")
	}
}

func TestPrototypeConcurrentDefine(t *testing.T) {
	p := sparse.NewPrototype()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Define("noop", func(this any, _ ...any) (any, error) { return this, nil })
			_ = p.Has("noop")
			_, _ = p.Invoke("slice", sparse.New(1, 2), 1)
		}()
	}
	wg.Wait()
	if !p.Has("noop") {
		t.Fatal("noop should be defined")
	}
}
