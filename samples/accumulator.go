package samples

import (
	"conjure/construct"
	"conjure/descriptor"
)

// Accumulator builds instances seeded through a ctor: every construction
// argument that is numeric is summed into the private total.
func Accumulator() *construct.Factory {
	return construct.NewFactory(func() any {
		var total float64
		return descriptor.Header{
			"ctor": func(args ...any) {
				for _, arg := range args {
					total += asFloat(arg)
				}
			},
			"header": descriptor.Header{
				"add": func(v float64) float64 {
					total += v
					return total
				},
				"total": func() float64 {
					return total
				},
			},
		}
	})
}

func asFloat(arg any) float64 {
	switch v := arg.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
