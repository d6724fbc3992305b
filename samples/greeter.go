package samples

import (
	"fmt"

	"conjure/construct"
	"conjure/descriptor"
)

// Greeter builds instances that greet a name fixed at construction time.
func Greeter() *construct.Factory {
	return construct.NewFactory(func() any {
		name := "world"
		return descriptor.Header{
			"ctor": func(args ...any) {
				if len(args) > 0 {
					if n, ok := args[0].(string); ok {
						name = n
					}
				}
			},
			"header": descriptor.Header{
				"greet": func() string {
					return fmt.Sprintf("hello, %s", name)
				},
			},
		}
	})
}
