package registry

import (
	"errors"
	"fmt"
	"sort"

	"conjure/collections"
	"conjure/construct"
	"conjure/events"
	"conjure/logging"

	"github.com/google/uuid"
)

var (
	ErrNotRegistered     = errors.New("factory not registered")
	ErrAlreadyRegistered = errors.New("factory already registered")
)

// Constructed is published after every successful construction through a
// registry.
type Constructed struct {
	Name      string
	FactoryID uuid.UUID
	Instance  *construct.Instance
}

// Registry maps names to factories so instances can be constructed by name,
// and announces constructions on an event.
type Registry struct {
	factories   *collections.Dictionary[string, *construct.Factory]
	constructed *events.Event[Constructed]
	log         logging.Logger
}

func New() *Registry {
	return &Registry{
		factories:   collections.NewDictionary[string, *construct.Factory](),
		constructed: events.New[Constructed](),
		log:         logging.Nop(),
	}
}

// WithLogger swaps the registry's logger, returning the registry for
// chaining at construction sites.
func (r *Registry) WithLogger(log logging.Logger) *Registry {
	if log != nil {
		r.log = log
	}
	return r
}

func (r *Registry) Register(name string, f *construct.Factory) error {
	if name == "" {
		return fmt.Errorf("factory name is empty")
	}
	if f == nil {
		return fmt.Errorf("factory %q is nil", name)
	}
	if err := r.factories.Add(name, f); err != nil {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, name)
	}
	r.log.Infof("registered factory %q (%s)", name, f.ID())
	return nil
}

func (r *Registry) Deregister(name string) bool {
	if r.factories.Delete(name) {
		r.log.Infof("deregistered factory %q", name)
		return true
	}
	return false
}

func (r *Registry) Resolve(name string) (*construct.Factory, error) {
	f, ok := r.factories.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return f, nil
}

func (r *Registry) Names() []string {
	names := r.factories.Keys()
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return r.factories.Len()
}

// Construct resolves name and forwards to the factory. Successful
// constructions are published on the Constructed event before returning.
func (r *Registry) Construct(name string, args ...any) (*construct.Instance, error) {
	f, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	inst, err := f.Construct(args...)
	if err != nil {
		r.log.Errorf("construct %q: %v", name, err)
		return nil, err
	}
	r.constructed.Publish(Constructed{
		Name:      name,
		FactoryID: f.ID(),
		Instance:  inst,
	})
	r.log.Debugf("constructed %q instance", name)
	return inst, nil
}

// OnConstructed subscribes to construction announcements.
func (r *Registry) OnConstructed(raised func(Constructed)) uuid.UUID {
	return r.constructed.Subscribe(raised)
}

func (r *Registry) Unsubscribe(id uuid.UUID) bool {
	return r.constructed.Unsubscribe(id)
}

// Default is the process-wide registry; the package-level funcs delegate to
// it.
var Default = New()

func Register(name string, f *construct.Factory) error {
	return Default.Register(name, f)
}

func Resolve(name string) (*construct.Factory, error) {
	return Default.Resolve(name)
}

func Construct(name string, args ...any) (*construct.Instance, error) {
	return Default.Construct(name, args...)
}
