package sparse

import (
	"fmt"
	"slices"
	"sync"
)

// Method is the signature of a named operation in a [Prototype]. this is the
// receiver the method was invoked on.
type Method func(this any, args ...any) (any, error)

// Prototype is a table of named array methods.
//
// [NewPrototype] preloads push, slice, concat, map, filter, reduce and fill.
// [Prototype.Define] adds or replaces methods at runtime, which is how a
// script would patch Array.prototype, except that the change is scoped to this
// table and never to shared state:
//
//	p := sparse.NewPrototype()
//	p.Define("first", func(this any, _ ...any) (any, error) {
//	    v, _ := this.(sparse.ArrayLike).Get(0)
//	    return v, nil
//	})
//	v, _ := p.Invoke("first", sparse.New("a", "b")) // → "a"
//
// All Prototype methods are safe for concurrent use. The sequences passed to
// Invoke are not.
type Prototype struct {
	mu      sync.RWMutex
	methods map[string]Method
}

// NewPrototype returns a Prototype holding the built-in array methods.
func NewPrototype() *Prototype {
	p := &Prototype{methods: make(map[string]Method)}
	p.methods["push"] = protoPush
	p.methods["slice"] = protoSlice
	p.methods["concat"] = protoConcat
	p.methods["map"] = protoMap
	p.methods["filter"] = protoFilter
	p.methods["reduce"] = protoReduce
	p.methods["fill"] = protoFill
	return p
}

// Define adds a method under name, replacing any existing one.
func (p *Prototype) Define(name string, fn Method) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.methods[name] = fn
}

// Has reports whether a method is defined under name.
func (p *Prototype) Has(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.methods[name]
	return ok
}

// Names returns the defined method names in sorted order.
func (p *Prototype) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.methods))
	for name := range p.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Invoke calls the method defined under name with this as the receiver.
// Returns (nil, ErrMethodNotFound) if no such method is defined.
func (p *Prototype) Invoke(name string, this any, args ...any) (any, error) {
	p.mu.RLock()
	fn, ok := p.methods[name]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return fn(this, args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in methods
// ─────────────────────────────────────────────────────────────────────────────

func protoPush(this any, args ...any) (any, error) {
	dst, ok := this.(Mutable)
	if !ok {
		return nil, fmt.Errorf("%w: push on %T", ErrNotMutable, this)
	}
	return Push(dst, args...), nil
}

func protoFill(this any, args ...any) (any, error) {
	dst, ok := this.(Mutable)
	if !ok {
		return nil, fmt.Errorf("%w: fill on %T", ErrNotMutable, this)
	}
	return Fill(dst, argAt(args, 0)), nil
}

// protoSlice returns an empty sequence for receivers that are not
// array-like.
func protoSlice(this any, args ...any) (any, error) {
	src, ok := this.(ArrayLike)
	if !ok {
		return Empty(), nil
	}
	start, ok := toInteger(argAt(args, 0), true)
	if !ok {
		start = 0
	}
	return Slice(src, start), nil
}

func protoConcat(this any, args ...any) (any, error) {
	return Concat(this, args...), nil
}

func protoMap(this any, args ...any) (any, error) {
	fn, ok := argAt(args, 0).(func(any) any)
	if !ok {
		return nil, fmt.Errorf("%w: map callback %T", ErrNotCallable, argAt(args, 0))
	}
	return Map(receiverOf(this), fn), nil
}

func protoFilter(this any, args ...any) (any, error) {
	var pred func(any) bool
	switch fn := argAt(args, 0).(type) {
	case func(any) bool:
		pred = fn
	case func(any) any:
		pred = func(v any) bool { return Truthy(fn(v)) }
	default:
		return nil, fmt.Errorf("%w: filter callback %T", ErrNotCallable, fn)
	}
	return Filter(receiverOf(this), pred), nil
}

func protoReduce(this any, args ...any) (any, error) {
	fn, ok := argAt(args, 0).(func(any, any) any)
	if !ok {
		return nil, fmt.Errorf("%w: reduce callback %T", ErrNotCallable, argAt(args, 0))
	}
	return Reduce(receiverOf(this), fn, args[1:]...), nil
}

// receiverOf views this as an array-like; anything else reads as empty.
func receiverOf(this any) ArrayLike {
	if a, ok := this.(ArrayLike); ok {
		return a
	}
	return Empty()
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
