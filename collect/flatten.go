package collect

import "reflect"

// Options controls leaf handling in FlattenWith.
type Options struct {
	// Replace maps leaf values to substitutes. Lookup happens when a leaf
	// is reached, so container values are never replaced. Leaves of
	// non-comparable types skip the lookup.
	Replace map[any]any

	// Unique drops repeated leaves, keeping the first occurrence.
	// Non-comparable leaves are always kept.
	Unique bool
}

// Flatten walks an arbitrarily nested sequence depth-first and returns its
// leaves in traversal order. Strings and byte slices count as leaves even
// though they are indexable. A nil input yields an empty slice and a bare
// atom yields a single-element slice.
//
//	Flatten([]any{"ab", "cd", []any{"xy", "zz"}})  // ["ab" "cd" "xy" "zz"]
func Flatten(v any) []any {
	return FlattenWith(v, Options{})
}

// FlattenWith is Flatten with leaf replacement and optional deduplication.
// Replacement runs before deduplication, so duplicates are judged on the
// substituted values. Cyclic structures are not detected; flattening one
// exhausts the stack.
func FlattenWith(v any, opts Options) []any {
	out := []any{}
	if v == nil {
		return out
	}

	var seen map[any]struct{}
	if opts.Unique {
		seen = make(map[any]struct{})
	}

	var walk func(elem any)
	walk = func(elem any) {
		if isSequence(elem) {
			rv := reflect.ValueOf(elem)
			for i := 0; i < rv.Len(); i++ {
				walk(rv.Index(i).Interface())
			}
			return
		}

		leaf := elem
		if len(opts.Replace) > 0 && isComparable(leaf) {
			if mapped, ok := opts.Replace[leaf]; ok {
				leaf = mapped
			}
		}
		if seen != nil && isComparable(leaf) {
			if _, dup := seen[leaf]; dup {
				return
			}
			seen[leaf] = struct{}{}
		}
		out = append(out, leaf)
	}
	walk(v)

	return out
}

// ToList normalizes a value into a flat list without descending into nested
// elements: an atom becomes a single-element slice, a sequence keeps its
// top-level elements with first-occurrence duplicates removed.
func ToList(v any) []any {
	out := []any{}
	if v == nil {
		return out
	}
	if !isSequence(v) {
		return append(out, v)
	}

	seen := make(map[any]struct{})
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if isComparable(elem) {
			if _, dup := seen[elem]; dup {
				continue
			}
			seen[elem] = struct{}{}
		}
		out = append(out, elem)
	}

	return out
}

// isSequence reports whether v should be traversed rather than kept as a
// leaf. Strings and byte slices stay leaves.
func isSequence(v any) bool {
	switch v.(type) {
	case nil, string, []byte:
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// isComparable reports whether v can be used as a map key.
func isComparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
