package frame

import "time"

// indexKey returns a comparable lookup key for an index label. Timestamps
// key by instant, so equal times in different locations join together.
func indexKey[I Index](v I) any {
	if t, ok := any(v).(time.Time); ok {
		return t.UnixNano()
	}
	return v
}

func indexLess[I Index](a, b I) bool {
	switch av := any(a).(type) {
	case time.Time:
		return av.Before(any(b).(time.Time))
	case float64:
		return av < any(b).(float64)
	}
	return false
}

func indexEqual[I Index](a, b I) bool {
	switch av := any(a).(type) {
	case time.Time:
		return av.Equal(any(b).(time.Time))
	case float64:
		return av == any(b).(float64)
	}
	return false
}

func indexesEqual[I Index](a, b []I) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !indexEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
