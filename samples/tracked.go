package samples

import (
	"conjure/construct"
	"conjure/descriptor"
)

const constructedKey = "constructed"

// Tracked builds instances that record their ordinal in private state while
// counting every construction in factory-local state. Serial construction
// only; the read-modify-write on the shared counter is unsynchronized.
func Tracked() *construct.Factory {
	var f *construct.Factory
	f = construct.NewFactory(func() any {
		ordinal := 0
		return descriptor.Header{
			"ctor": func(args ...any) {
				current, _ := f.Statics().Get(constructedKey)
				count, _ := current.(int)
				ordinal = count + 1
				f.Statics().Set(constructedKey, ordinal)
			},
			"header": descriptor.Header{
				"ordinal": func() int {
					return ordinal
				},
			},
		}
	})
	return f
}

// TrackedCount reads the factory-local construction counter.
func TrackedCount(f *construct.Factory) int {
	current, _ := f.Statics().Get(constructedKey)
	count, _ := current.(int)
	return count
}
