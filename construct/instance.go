package construct

import (
	"sort"

	"conjure/descriptor"

	"github.com/google/uuid"
)

// Instance is a descriptor's public-interface mapping tagged with the
// identity of the factory that produced it. Private state lives only inside
// the closures the members close over; nothing here reaches it.
type Instance struct {
	tag     uuid.UUID
	members descriptor.Header
}

// Of reports whether the instance was constructed by f.
func (inst *Instance) Of(f *Factory) bool {
	return f != nil && inst.tag == f.id
}

func (inst *Instance) FactoryID() uuid.UUID {
	return inst.tag
}

func (inst *Instance) Member(name string) (any, bool) {
	member, ok := inst.members[name]
	return member, ok
}

// Members lists the exposed names, sorted. The set is exactly what the
// descriptor's header declared.
func (inst *Instance) Members() []string {
	names := make([]string, 0, len(inst.members))
	for name := range inst.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MemberAs fetches a member and converts it to T, typically a func type so
// the closure can be called directly.
func MemberAs[T any](inst *Instance, name string) (T, bool) {
	var member T
	raw, has := inst.Member(name)
	if !has {
		return member, false
	}
	member, ok := raw.(T)
	return member, ok
}
