package frame

import "fmt"

// Align outer-joins frames column-wise for side-by-side analysis. Duplicate
// index rows are removed per source keeping the first occurrence, and every
// column is renamed with its 1-based source position: column close from the
// first frame becomes close_1. Columns from the first source are primary:
// they are never filled and any row still missing a primary value is
// dropped. All other columns are forward-filled along the joined index, so
// sparse auxiliary sources carry their last observation forward into the
// rows the primary source defines.
func Align[I Index](frames ...*Frame[I]) (*Frame[I], error) {
	if len(frames) < 2 {
		return nil, fmt.Errorf("%w: align needs at least two frames, got %d", ErrInvalidArgument, len(frames))
	}

	renamed := make([]*Frame[I], len(frames))
	for i, f := range frames {
		if f == nil {
			return nil, fmt.Errorf("%w: frame %d is nil", ErrInvalidArgument, i+1)
		}
		renamed[i] = f.DropDuplicateIndex().withNameSuffix(fmt.Sprintf("_%d", i+1))
	}

	merged, err := concatColumns(renamed)
	if err != nil {
		return nil, fmt.Errorf("align: %w", err)
	}

	primary := merged.cols[:len(renamed[0].cols)]
	secondary := merged.cols[len(renamed[0].cols):]
	if len(secondary) > 0 {
		merged = merged.ForwardFill(secondary...)
	}
	if len(primary) > 0 {
		merged = merged.DropNaN(primary...)
	}
	return merged, nil
}

// withNameSuffix appends suffix to every column name, keeping groups intact.
func (f *Frame[I]) withNameSuffix(suffix string) *Frame[I] {
	out := f.clone()
	for j := range out.cols {
		out.cols[j].Name += suffix
	}
	return out
}
