// Package frame provides small immutable tables of float64 values over a
// shared row index, together with the join operations market-data analysis
// keeps reaching for: aligning sources sampled at different frequencies and
// stacking per-instrument tables into one grouped view.
//
// # Data model
//
// A Frame is indexed either by time.Time (observed series) or by float64
// (numeric grids such as fitted curves). Cells are float64 with NaN marking
// missing values. Columns carry a two-level key: a Name and an optional
// Group, so "close" from ticker A and ticker B coexist as A.close and
// B.close after Concat. Constructors and accessors copy, so a frame can
// never be mutated through the slices that built it or that it returns.
//
// # Aligning sources
//
// Align joins a reference source with sparser auxiliary sources. The first
// frame is primary: its rows decide which index entries survive. Auxiliary
// columns are forward-filled so their last observation carries into every
// primary row:
//
//	merged, err := frame.Align(prices, monthlyIndicator)
//	// columns: close_1 (never filled), indicator_2 (forward-filled)
//
// # Stacking by key
//
// Concat combines a map of per-instrument frames into one frame grouped by
// instrument, outer-joined on the union of their indexes:
//
//	stack, err := frame.Concat(map[string]*frame.Frame[time.Time]{
//		"7267 JP": honda,
//		"7203 JP": toyota,
//	})
//	// columns: 7203 JP.close, 7203 JP.volume, 7267 JP.close, ...
//
// Cells a source never observed stay NaN; Concat neither fills nor drops.
package frame
