package descriptor

import (
	"errors"
	"fmt"
)

// Header is the public-interface mapping of a descriptor: the names a
// constructed instance exposes, bound to values or closures.
type Header = map[string]any

// Ctor is the one-time initializer a compound descriptor carries under the
// "ctor" entry. It receives the construction arguments positionally and its
// return is nothing; failures inside user ctors surface as panics.
type Ctor = func(args ...any)

const (
	ctorEntry   = "ctor"
	headerEntry = "header"
)

// ErrInvalid is wrapped into every shape-validation failure.
var ErrInvalid = errors.New("invalid descriptor")

type Kind int

const (
	// Simple descriptors are the public interface themselves.
	Simple Kind = iota + 1
	// Compound descriptors carry a ctor entry and a header entry.
	Compound
)

// Descriptor is the classified production of a factory: a tagged union of
// the two legal shapes.
type Descriptor struct {
	kind   Kind
	ctor   Ctor
	header Header
}

func (d Descriptor) Kind() Kind {
	return d.kind
}

// Header returns the public-interface mapping.
func (d Descriptor) Header() Header {
	return d.header
}

// Ctor returns the initializer, nil for simple descriptors.
func (d Descriptor) Ctor() Ctor {
	return d.ctor
}

// Classify validates the raw value a factory produced and sorts it into one
// of the two legal shapes. Anything that is not a non-empty mapping fails,
// as does a compound mapping whose ctor entry is not callable, whose header
// entry is missing, empty or nests another ctor, or that carries entries
// besides ctor and header.
func Classify(raw any) (Descriptor, error) {
	if raw == nil {
		return Descriptor{}, fmt.Errorf("%w: factory produced nil", ErrInvalid)
	}
	m, isMapping := raw.(Header)
	if !isMapping {
		return Descriptor{}, fmt.Errorf("%w: factory produced %s, expected a mapping", ErrInvalid, shapeName(raw))
	}
	if len(m) == 0 {
		return Descriptor{}, fmt.Errorf("%w: factory produced an empty mapping", ErrInvalid)
	}
	rawCtor, hasCtor := m[ctorEntry]
	if !hasCtor {
		return Descriptor{kind: Simple, header: m}, nil
	}
	ctor, callable := rawCtor.(Ctor)
	if !callable {
		return Descriptor{}, fmt.Errorf("%w: ctor entry is %T, expected func(...any)", ErrInvalid, rawCtor)
	}
	rawHeader, hasHeader := m[headerEntry]
	if !hasHeader {
		return Descriptor{}, fmt.Errorf("%w: ctor entry without a header entry", ErrInvalid)
	}
	if len(m) != 2 {
		return Descriptor{}, fmt.Errorf("%w: compound descriptor has entries besides ctor and header", ErrInvalid)
	}
	header, isMapping := rawHeader.(Header)
	if !isMapping {
		return Descriptor{}, fmt.Errorf("%w: header entry is %s, expected a mapping", ErrInvalid, shapeName(rawHeader))
	}
	if len(header) == 0 {
		return Descriptor{}, fmt.Errorf("%w: header entry is an empty mapping", ErrInvalid)
	}
	if _, nested := header[ctorEntry]; nested {
		return Descriptor{}, fmt.Errorf("%w: header entry contains a nested ctor entry", ErrInvalid)
	}
	return Descriptor{kind: Compound, ctor: ctor, header: header}, nil
}

// shapeName labels the common malformed shapes for error messages without
// resorting to reflection.
func shapeName(raw any) string {
	switch raw.(type) {
	case nil:
		return "nil"
	case []any:
		return "an array"
	case Ctor, func() any, func():
		return "a callable"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
