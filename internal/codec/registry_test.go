package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user538295/squish/core"
)

// namedCodec is a stub backend carrying only a name.
type namedCodec struct {
	core.Codec
	name string
}

func (c *namedCodec) Name() string { return c.name }

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&namedCodec{name: "lz4"})

	tests := []struct {
		name   string
		lookup string
		want   bool
	}{
		{name: "exact", lookup: "lz4", want: true},
		{name: "uppercase", lookup: "LZ4", want: true},
		{name: "mixed case", lookup: "Lz4", want: true},
		{name: "surrounding space", lookup: " lz4 ", want: true},
		{name: "unknown", lookup: "brotli", want: false},
		{name: "empty", lookup: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := r.Lookup(tt.lookup)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	first := &namedCodec{name: "zlib"}
	second := &namedCodec{name: "ZLIB"}

	r := NewRegistry()
	r.Register(first)
	r.Register(second)

	got, ok := r.Lookup("zlib")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Len(t, r.SupportedNames(), 1)
}

func TestRegistry_SupportedNamesSorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&namedCodec{name: "zlib"})
	r.Register(&namedCodec{name: "lz4"})
	r.Register(&namedCodec{name: "lzma"})
	r.Register(&namedCodec{name: "lzfse"})

	assert.Equal(t, []string{"lz4", "lzfse", "lzma", "zlib"}, r.SupportedNames())
}

func TestDefault_RegistersAllBackends(t *testing.T) {
	t.Parallel()

	r := Default()
	assert.Equal(t, []string{"lz4", "lzfse", "lzma", "zlib"}, r.SupportedNames())

	for _, name := range r.SupportedNames() {
		c, ok := r.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
}
