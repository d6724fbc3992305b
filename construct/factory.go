package construct

import (
	"errors"
	"fmt"
	"sync"

	"conjure/collections"
	"conjure/descriptor"

	"github.com/google/uuid"
)

// ErrMissingConstructor is returned when construction arguments are supplied
// but the descriptor declared no ctor entry to receive them.
var ErrMissingConstructor = errors.New("missing constructor")

// ErrInvalidDescriptor re-surfaces the descriptor package's shape errors so
// callers only need this package to classify a failure.
var ErrInvalidDescriptor = descriptor.ErrInvalid

// Factory wraps a production function that yields a fresh descriptor per
// call. The factory itself is the identity its instances are tagged with,
// and the home of factory-local state shared by all of them.
type Factory struct {
	id      uuid.UUID
	produce func() any

	staticsOnce sync.Once
	statics     *collections.Dictionary[string, any]
}

func NewFactory(produce func() any) *Factory {
	if produce == nil {
		panic("produce function is nil")
	}
	return &Factory{
		id:      uuid.New(),
		produce: produce,
	}
}

func (f *Factory) ID() uuid.UUID {
	return f.id
}

// Statics is the factory-local state: one dictionary per factory, lazily
// created on first use, shared by every instance the factory produces, alive
// until ClearStatics. The dictionary guards its own entries but composite
// read-modify-write sequences need caller-side locking.
func (f *Factory) Statics() *collections.Dictionary[string, any] {
	f.staticsOnce.Do(func() {
		f.statics = collections.NewDictionary[string, any]()
	})
	return f.statics
}

func (f *Factory) ClearStatics() {
	f.Statics().Clear()
}

// Construct produces one instance: it invokes the production function for a
// fresh descriptor (new private state on every call), validates and
// classifies the shape, tags the header with this factory's identity, and
// runs the ctor exactly once with args in order.
//
// Simple descriptors reject arguments with ErrMissingConstructor. Panics
// raised inside a user ctor propagate unchanged and nothing is rolled back;
// private state the ctor touched before failing stays mutated.
func (f *Factory) Construct(args ...any) (*Instance, error) {
	desc, err := descriptor.Classify(f.produce())
	if err != nil {
		return nil, err
	}
	ctor := desc.Ctor()
	if ctor == nil && len(args) > 0 {
		return nil, fmt.Errorf("%w: %d argument(s) supplied and the descriptor declares no ctor", ErrMissingConstructor, len(args))
	}
	// Tagged before the ctor runs; tagging is one-time and irreversible.
	inst := &Instance{
		tag:     f.id,
		members: desc.Header(),
	}
	if ctor != nil {
		ctor(args...)
	}
	return inst, nil
}
