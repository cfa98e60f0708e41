package frame

import (
	"fmt"
	"math"
	"sort"
)

// Concat stacks keyed frames side by side into one two-level frame: each
// source key becomes the column group of that source's columns, in sorted
// key order. Rows are outer-joined on the union of all indexes; cells
// absent for a key stay NaN. Nothing is filled or dropped. An empty mapping
// yields an empty frame.
func Concat[I Index](groups map[string]*Frame[I]) (*Frame[I], error) {
	if len(groups) == 0 {
		return FromColumns[I](nil, nil, nil)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	grouped := make([]*Frame[I], 0, len(keys))
	for _, key := range keys {
		f := groups[key]
		if f == nil {
			return nil, fmt.Errorf("%w: frame for key %q is nil", ErrInvalidArgument, key)
		}
		g := f.clone()
		for j := range g.cols {
			if g.cols[j].Group != "" {
				return nil, fmt.Errorf("%w: frame for key %q already has grouped column %s", ErrInvalidArgument, key, g.cols[j])
			}
			g.cols[j].Group = key
		}
		grouped = append(grouped, g)
	}

	out, err := concatColumns(grouped)
	if err != nil {
		return nil, fmt.Errorf("concat: %w", err)
	}
	return out, nil
}

// concatColumns outer-joins frames column-wise. When every frame carries an
// identical index the row order is preserved as given; otherwise rows
// follow the sorted union of all indexes, which requires each frame's index
// to be free of duplicates.
func concatColumns[I Index](frames []*Frame[I]) (*Frame[I], error) {
	shared := true
	for _, f := range frames[1:] {
		if !indexesEqual(frames[0].index, f.index) {
			shared = false
			break
		}
	}

	joined := frames
	if !shared {
		union := unionIndex(frames)
		joined = make([]*Frame[I], len(frames))
		for i, f := range frames {
			r, err := f.reindex(union)
			if err != nil {
				return nil, err
			}
			joined[i] = r
		}
	}

	cols := make([]Column, 0)
	cells := make([][]float64, 0)
	for _, f := range joined {
		cols = append(cols, f.cols...)
		cells = append(cells, f.cells...)
	}
	return FromColumns(joined[0].index, cols, cells)
}

// unionIndex collects the distinct index labels of all frames in sorted
// order.
func unionIndex[I Index](frames []*Frame[I]) []I {
	seen := make(map[any]struct{})
	union := make([]I, 0)
	for _, f := range frames {
		for _, ix := range f.index {
			k := indexKey(ix)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			union = append(union, ix)
		}
	}
	sort.Slice(union, func(i, j int) bool { return indexLess(union[i], union[j]) })
	return union
}

// reindex maps the frame onto a new index, filling rows absent from the
// frame with NaN. The frame's own index must be unique.
func (f *Frame[I]) reindex(target []I) (*Frame[I], error) {
	pos := make(map[any]int, len(f.index))
	for i, ix := range f.index {
		k := indexKey(ix)
		if _, dup := pos[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateIndex, ix)
		}
		pos[k] = i
	}

	cells := make([][]float64, len(f.cols))
	for j := range f.cols {
		col := make([]float64, len(target))
		for i, ix := range target {
			if r, ok := pos[indexKey(ix)]; ok {
				col[i] = f.cells[j][r]
			} else {
				col[i] = math.NaN()
			}
		}
		cells[j] = col
	}

	return &Frame[I]{
		index: append([]I(nil), target...),
		cols:  append([]Column(nil), f.cols...),
		cells: cells,
	}, nil
}
