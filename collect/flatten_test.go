package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFlatten tests depth-first flattening over mixed nesting shapes
func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{"nil input", nil, []any{}},
		{"empty slice", []any{}, []any{}},
		{"atomic string", "ab", []any{"ab"}},
		{"atomic int", 42, []any{42}},
		{"atomic float", 0.5, []any{0.5}},
		{"flat typed slice", []string{"ab", "cd"}, []any{"ab", "cd"}},
		{
			"one nesting level",
			[]any{"ab", "cd", []any{"xy", "zz"}},
			[]any{"ab", "cd", "xy", "zz"},
		},
		{
			"mixed depth",
			[]any{1, []any{2, []any{3, 4}}, 5},
			[]any{1, 2, 3, 4, 5},
		},
		{
			"nested empty containers",
			[]any{[]any{}, []any{[]any{}}},
			[]any{},
		},
		{
			"typed nested slices",
			[][]float64{{1, 2}, {3}},
			[]any{1.0, 2.0, 3.0},
		},
		{
			"byte slice stays whole",
			[]any{[]byte("ab"), "cd"},
			[]any{[]byte("ab"), "cd"},
		},
		{
			"array input",
			[2]int{7, 9},
			[]any{7, 9},
		},
		{
			"nil element kept as leaf",
			[]any{1, nil, 2},
			[]any{1, nil, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.input))
		})
	}
}

// TestFlattenWith tests leaf replacement and deduplication
func TestFlattenWith(t *testing.T) {
	t.Run("replace applies to leaves only", func(t *testing.T) {
		got := FlattenWith([]any{"ab", []any{"xy", "zz"}}, Options{
			Replace: map[any]any{"xy": "0x"},
		})
		assert.Equal(t, []any{"ab", "0x", "zz"}, got)
	})

	t.Run("replace atomic input", func(t *testing.T) {
		got := FlattenWith("xy", Options{Replace: map[any]any{"xy": "0x"}})
		assert.Equal(t, []any{"0x"}, got)
	})

	t.Run("unmapped atom passes through", func(t *testing.T) {
		got := FlattenWith("ab", Options{Replace: map[any]any{"xy": "0x"}})
		assert.Equal(t, []any{"ab"}, got)
	})

	t.Run("unique keeps first occurrence order", func(t *testing.T) {
		got := FlattenWith([]any{3, 1, []any{3, 2}, 1}, Options{Unique: true})
		assert.Equal(t, []any{3, 1, 2}, got)
	})

	t.Run("unique judges substituted values", func(t *testing.T) {
		got := FlattenWith([]any{"xy", "0x"}, Options{
			Replace: map[any]any{"xy": "0x"},
			Unique:  true,
		})
		assert.Equal(t, []any{"0x"}, got)
	})

	t.Run("unique keeps non-comparable leaves", func(t *testing.T) {
		got := FlattenWith([]any{[]byte("ab"), []byte("ab")}, Options{Unique: true})
		assert.Equal(t, []any{[]byte("ab"), []byte("ab")}, got)
	})
}

// TestFlattenIdempotent verifies re-flattening an already flat result is a no-op
func TestFlattenIdempotent(t *testing.T) {
	flat := Flatten([]any{"ab", []any{"cd", []any{"ef"}}})
	assert.Equal(t, flat, Flatten(flat))
}

// TestToList tests shallow normalization with ordered dedup
func TestToList(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{"nil", nil, []any{}},
		{"atom wraps", "USD", []any{"USD"}},
		{"int atom wraps", 7, []any{7}},
		{
			"dedup keeps first occurrence",
			[]string{"7267 JP", "7267 JP", "8035 JP", "7267 JP"},
			[]any{"7267 JP", "8035 JP"},
		},
		{
			"no descent into nested elements",
			[]any{1, []any{2, 2}},
			[]any{1, []any{2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToList(tt.input))
		})
	}
}
