package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySimple(test *testing.T) {
	count := 0
	desc, err := Classify(Header{
		"next": func() int { count++; return count },
	})
	require.NoError(test, err)
	assert.Equal(test, Simple, desc.Kind())
	assert.Nil(test, desc.Ctor())
	assert.Len(test, desc.Header(), 1)
}

func TestClassifyCompound(test *testing.T) {
	count := 0
	desc, err := Classify(Header{
		"ctor": func(args ...any) { count = len(args) },
		"header": Header{
			"count": func() int { return count },
		},
	})
	require.NoError(test, err)
	assert.Equal(test, Compound, desc.Kind())
	require.NotNil(test, desc.Ctor())
	desc.Ctor()(1, 2, 3)
	assert.Equal(test, 3, count)
}

func TestClassifyHeaderWithoutCtorIsSimple(test *testing.T) {
	// A header entry on its own is just an ordinary public member.
	desc, err := Classify(Header{
		"header": "not special here",
		"name":   func() string { return "x" },
	})
	require.NoError(test, err)
	assert.Equal(test, Simple, desc.Kind())
	assert.Len(test, desc.Header(), 2)
}

func TestClassifyRejectsMalformedShapes(test *testing.T) {
	malformed := map[string]any{
		"nil":            nil,
		"empty mapping":  Header{},
		"array":          []any{1, 2},
		"callable":       func() any { return nil },
		"scalar":         42,
		"ctor not func":  Header{"ctor": "nope", "header": Header{"a": 1}},
		"missing header": Header{"ctor": func(args ...any) {}},
		"extra entries":  Header{"ctor": func(args ...any) {}, "header": Header{"a": 1}, "more": 1},
		"header scalar":  Header{"ctor": func(args ...any) {}, "header": 7},
		"empty header":   Header{"ctor": func(args ...any) {}, "header": Header{}},
		"nested ctor":    Header{"ctor": func(args ...any) {}, "header": Header{"ctor": func(args ...any) {}}},
	}
	for name, raw := range malformed {
		_, err := Classify(raw)
		assert.ErrorIs(test, err, ErrInvalid, name)
	}
}
