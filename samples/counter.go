package samples

import (
	"conjure/construct"
	"conjure/descriptor"
)

// Counter builds instances that increment a private counter. The counter
// lives only in the closure; the instance exposes next and reset.
func Counter() *construct.Factory {
	return construct.NewFactory(func() any {
		count := 0
		return descriptor.Header{
			"next": func() int {
				count++
				return count
			},
			"reset": func(n int) {
				count = n
			},
		}
	})
}
