// Package collect normalizes nested collections into flat ordered lists,
// the shape most table constructors and query builders want their inputs in.
//
// Flatten performs a depth-first walk over arbitrarily nested slices and
// arrays; ToList only normalizes the top level. Both treat strings and byte
// slices as atoms rather than containers:
//
//	collect.Flatten([]any{"7267 JP", []string{"8035 JP", "6954 JP"}})
//	// ["7267 JP" "8035 JP" "6954 JP"]
//
//	collect.FlattenWith(tickers, collect.Options{
//		Replace: map[any]any{"N225": "NKY"},
//		Unique:  true,
//	})
//
// All functions return fresh slices and never mutate their inputs.
package collect
